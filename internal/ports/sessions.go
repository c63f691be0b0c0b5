package ports

import (
	"context"

	"github.com/jsamuelsen11/contact-form-service/internal/domain/contact"
)

// FormSessions defines the session port: a keyed collection of form stores.
// Implemented by the session adapter; called by the application layer.
type FormSessions interface {
	// Create allocates a new session with an empty store and returns its ID.
	// Returns domain.ErrUnavailable when the session limit is reached.
	Create(ctx context.Context) (string, error)

	// With runs fn against the session's store while holding that session's
	// lock, so each event is applied atomically. The store must not be
	// retained after fn returns.
	// Returns domain.ErrNotFound if the session does not exist or expired.
	With(ctx context.Context, id string, fn func(*contact.Store) error) error

	// Delete removes a session.
	// Returns domain.ErrNotFound if the session does not exist.
	Delete(ctx context.Context, id string) error
}
