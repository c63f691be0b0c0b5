// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/contact-form-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/contact-form-service/internal/adapters/http/middleware"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is composed with middleware.Chain and applied globally, the
// first one outermost.
func NewRouter(
	formHandler *handlers.FormHandler,
	uiHandler *handlers.UIHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Chain(middlewares...))

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// Contact form page and its datastar endpoints.
	r.Get("/", uiHandler.Page)
	r.Get("/ui/state", uiHandler.State)
	r.Post("/ui/{event}", uiHandler.Event)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/forms", formHandler.OpenForm)
		r.Get("/forms/{id}", formHandler.GetForm)
		r.Delete("/forms/{id}", formHandler.CloseForm)

		// Field and form events.
		r.Post("/forms/{id}/edit", formHandler.EditField)
		r.Post("/forms/{id}/blur", formHandler.BlurField)
		r.Post("/forms/{id}/focus", formHandler.FocusField)
		r.Post("/forms/{id}/submit", formHandler.SubmitForm)
	})

	return r
}
