package handlers

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/contact-form-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/contact-form-service/internal/domain/contact"
	"github.com/jsamuelsen11/contact-form-service/internal/ports"
)

// fieldEventFunc is the shape shared by FormService.Blur and FormService.Focus.
type fieldEventFunc func(ctx context.Context, id string, field contact.Field) (*ports.FormState, error)

// FormHandler handles the JSON API for contact form sessions.
type FormHandler struct {
	svc ports.FormService
}

// NewFormHandler creates a new FormHandler with the given service port.
func NewFormHandler(svc ports.FormService) *FormHandler {
	return &FormHandler{svc: svc}
}

// OpenForm handles POST /api/v1/forms.
func (h *FormHandler) OpenForm(w http.ResponseWriter, r *http.Request) {
	state, err := h.svc.Open(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/forms/"+state.SessionID)
	writeJSON(w, http.StatusCreated, dto.ToFormResponse(state))
}

// GetForm handles GET /api/v1/forms/{id}.
func (h *FormHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseSessionID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	state, err := h.svc.Get(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToFormResponse(state))
}

// CloseForm handles DELETE /api/v1/forms/{id}.
func (h *FormHandler) CloseForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseSessionID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.Close(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// EditField handles POST /api/v1/forms/{id}/edit.
func (h *FormHandler) EditField(w http.ResponseWriter, r *http.Request) {
	id, err := parseSessionID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.EditFieldRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	field, value, err := req.Parse()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	state, err := h.svc.Edit(r.Context(), id, field, value)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToFormResponse(state))
}

// BlurField handles POST /api/v1/forms/{id}/blur.
func (h *FormHandler) BlurField(w http.ResponseWriter, r *http.Request) {
	h.fieldEvent(w, r, h.svc.Blur)
}

// FocusField handles POST /api/v1/forms/{id}/focus.
func (h *FormHandler) FocusField(w http.ResponseWriter, r *http.Request) {
	h.fieldEvent(w, r, h.svc.Focus)
}

// SubmitForm handles POST /api/v1/forms/{id}/submit. A rejected submission
// is a 200 response with accepted set to false.
func (h *FormHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseSessionID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	outcome, err := h.svc.Submit(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSubmitResponse(outcome))
}

// fieldEvent decodes a FieldEventRequest and applies apply to the session.
func (h *FormHandler) fieldEvent(w http.ResponseWriter, r *http.Request, apply fieldEventFunc) {
	id, err := parseSessionID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.FieldEventRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	field, err := req.Parse()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	state, err := apply(r.Context(), id, field)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToFormResponse(state))
}
