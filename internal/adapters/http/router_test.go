package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/contact-form-service/internal/adapters/http"
	"github.com/jsamuelsen11/contact-form-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/contact-form-service/internal/domain/contact"
	"github.com/jsamuelsen11/contact-form-service/internal/ports"
	"github.com/jsamuelsen11/contact-form-service/mocks"
)

const testSessionID = "3b241101-e2bb-4255-8caf-4136c566a962"

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockFormService) {
	t.Helper()
	svc := mocks.NewMockFormService(t)
	registry := mocks.NewMockHealthRegistry(t)

	fh := handlers.NewFormHandler(svc)
	uh := handlers.NewUIHandler(svc, handlers.UIOptions{})
	hh := handlers.NewHealthHandler(registry)

	router := adapthttp.NewRouter(fh, uh, hh)
	return router, svc
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/"},
		{http.MethodGet, "/ui/state"},
		{http.MethodPost, "/ui/{event}"},
		{http.MethodPost, "/api/v1/forms"},
		{http.MethodGet, "/api/v1/forms/{id}"},
		{http.MethodDelete, "/api/v1/forms/{id}"},
		{http.MethodPost, "/api/v1/forms/{id}/edit"},
		{http.MethodPost, "/api/v1/forms/{id}/blur"},
		{http.MethodPost, "/api/v1/forms/{id}/focus"},
		{http.MethodPost, "/api/v1/forms/{id}/submit"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockFormService(t)
	registry := mocks.NewMockHealthRegistry(t)

	fh := handlers.NewFormHandler(svc)
	uh := handlers.NewUIHandler(svc, handlers.UIOptions{})
	hh := handlers.NewHealthHandler(registry)

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router := adapthttp.NewRouter(fh, uh, hh, testMW)

	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_IntegrationEditField(t *testing.T) {
	t.Parallel()

	router, svc := newTestRouter(t)

	svc.EXPECT().Edit(mock.Anything, testSessionID, contact.FieldMessage, contact.Text("Hello there")).
		Return(&ports.FormState{SessionID: testSessionID, Errors: map[contact.Field]string{}}, nil)

	rec := httptest.NewRecorder()
	body := strings.NewReader(`{"field":"message","value":"Hello there"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/forms/"+testSessionID+"/edit", body)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/forms", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
