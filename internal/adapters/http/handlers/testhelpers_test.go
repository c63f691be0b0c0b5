package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/contact-form-service/internal/domain/contact"
	"github.com/jsamuelsen11/contact-form-service/internal/ports"
)

const (
	testSessionID  = "3b241101-e2bb-4255-8caf-4136c566a962"
	otherSessionID = "9a5f0c1e-7d2b-4c3a-9e8f-0b1c2d3e4f50"
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func emptyState(id string) *ports.FormState {
	return &ports.FormState{SessionID: id, Errors: map[contact.Field]string{}}
}

func flaggedState(id string) *ports.FormState {
	return &ports.FormState{
		SessionID: id,
		Data:      contact.FormData{Email: "not-an-email"},
		Flags:     contact.EditFlags{Email: true},
		Errors: map[contact.Field]string{
			contact.FieldEmail: contact.Message(contact.FieldEmail),
		},
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
