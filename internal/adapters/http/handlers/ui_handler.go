package handlers

import (
	"context"
	_ "embed"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/jsamuelsen11/contact-form-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/contact-form-service/internal/domain"
	"github.com/jsamuelsen11/contact-form-service/internal/domain/contact"
	"github.com/jsamuelsen11/contact-form-service/internal/ports"
)

// SessionCookieName is the cookie carrying the form session of a browser.
const SessionCookieName = "contact_form_session"

// UI events accepted on POST /ui/{event}.
const (
	eventEdit   = "edit"
	eventBlur   = "blur"
	eventFocus  = "focus"
	eventSubmit = "submit"
)

//go:embed web/contact.html
var contactPage []byte

// UIOptions configures the UIHandler.
type UIOptions struct {
	// SecureCookie marks the session cookie Secure.
	SecureCookie bool
	// CookieTTL sets the session cookie Max-Age. Zero makes it a browser
	// session cookie.
	CookieTTL time.Duration
	Logger    *slog.Logger
}

// UIHandler serves the contact form page and bridges its datastar signals to
// the form service. Every browser owns one form session identified by the
// SessionCookieName cookie.
type UIHandler struct {
	svc    ports.FormService
	opts   UIOptions
	logger *slog.Logger
}

// NewUIHandler creates a new UIHandler with the given service port.
func NewUIHandler(svc ports.FormService, opts UIOptions) *UIHandler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &UIHandler{svc: svc, opts: opts, logger: logger}
}

// Page handles GET /. It makes sure the browser has a live form session and
// serves the embedded contact form page.
func (h *UIHandler) Page(w http.ResponseWriter, r *http.Request) {
	if _, err := h.ensureSession(w, r); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(contactPage)
}

// State handles GET /ui/state. It patches the page signals with the current
// session state so a reload shows what the store holds.
func (h *UIHandler) State(w http.ResponseWriter, r *http.Request) {
	state, err := h.ensureSession(w, r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	h.patch(w, r, dto.ToUIPatch(state, false))
}

// Event handles POST /ui/{event}. It reads the page signals, applies the
// event to the browser's session and patches the resulting state back.
func (h *UIHandler) Event(w http.ResponseWriter, r *http.Request) {
	event := chi.URLParam(r, "event")
	switch event {
	case eventEdit, eventBlur, eventFocus, eventSubmit:
	default:
		dto.WriteErrorResponse(w, r, domain.NewValidationError("event", "must be one of: edit, blur, focus, submit"))
		return
	}

	var signals dto.UISignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"signals": "invalid datastar signals"},
		})
		return
	}

	id, restored, err := h.sessionFor(w, r, &signals)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if event == eventSubmit {
		// Edits are posted concurrently and may land out of order. The page
		// signals are what the user submits, so they win over the store.
		if !restored {
			if err := h.restore(r.Context(), id, signals.Form); err != nil {
				dto.WriteErrorResponse(w, r, err)
				return
			}
		}
		outcome, err := h.svc.Submit(r.Context(), id)
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		h.patch(w, r, dto.ToUIPatch(outcome.State, outcome.Accepted))
		return
	}

	field, value, err := signals.Parse()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var state *ports.FormState
	switch event {
	case eventEdit:
		state, err = h.svc.Edit(r.Context(), id, field, value)
	case eventBlur:
		state, err = h.svc.Blur(r.Context(), id, field)
	case eventFocus:
		state, err = h.svc.Focus(r.Context(), id, field)
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	h.patch(w, r, dto.ToUIPatch(state, false))
}

// patch streams a single signal patch over SSE.
func (h *UIHandler) patch(w http.ResponseWriter, r *http.Request, p dto.UIPatch) {
	sse := datastar.NewSSE(w, r)
	if err := sse.MarshalAndPatchSignals(p); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to patch signals",
			slog.String("operation", "UIHandler.patch"),
			slog.Any("error", err),
		)
	}
}

// ensureSession returns the state of the browser's session, opening a new
// one and setting the cookie when the cookie is missing or its session is
// gone.
func (h *UIHandler) ensureSession(w http.ResponseWriter, r *http.Request) (*ports.FormState, error) {
	if id, ok := sessionCookie(r); ok {
		state, err := h.svc.Get(r.Context(), id)
		if err == nil {
			return state, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	state, err := h.svc.Open(r.Context())
	if err != nil {
		return nil, err
	}
	h.setCookie(w, state.SessionID)
	return state, nil
}

// sessionFor resolves the session an event applies to. When the browser's
// session expired while the page stayed open, a new session is opened and
// the values shown on the page are replayed into it so the event applies to
// what the user sees. restored reports whether that replay happened.
func (h *UIHandler) sessionFor(w http.ResponseWriter, r *http.Request, signals *dto.UISignals) (string, bool, error) {
	if id, ok := sessionCookie(r); ok {
		_, err := h.svc.Get(r.Context(), id)
		if err == nil {
			return id, false, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return "", false, err
		}
	}

	state, err := h.svc.Open(r.Context())
	if err != nil {
		return "", false, err
	}
	h.setCookie(w, state.SessionID)

	if err := h.restore(r.Context(), state.SessionID, signals.Form); err != nil {
		return "", false, err
	}

	h.logger.InfoContext(r.Context(), "form session restored from page signals",
		slog.String("session_id", state.SessionID),
	)
	return state.SessionID, true, nil
}

// restore replays every field value of data into the session. Edits never
// raise flags, so a fresh session shows no errors after it.
func (h *UIHandler) restore(ctx context.Context, id string, data contact.FormData) error {
	for _, f := range contact.Fields() {
		if _, err := h.svc.Edit(ctx, id, f, data.Get(f)); err != nil {
			return err
		}
	}
	return nil
}

func (h *UIHandler) setCookie(w http.ResponseWriter, id string) {
	c := &http.Cookie{
		Name:     SessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.opts.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	}
	if h.opts.CookieTTL > 0 {
		c.MaxAge = int(h.opts.CookieTTL.Seconds())
	}
	http.SetCookie(w, c)
}

func sessionCookie(r *http.Request) (string, bool) {
	c, err := r.Cookie(SessionCookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}
