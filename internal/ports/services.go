package ports

import (
	"context"

	"github.com/jsamuelsen11/contact-form-service/internal/domain/contact"
)

// FormService defines the service port for contact form sessions.
// Implemented by the application layer; called by inbound adapters (handlers).
// Each session owns one contact.Store and every call applies a single user
// event to it.
type FormService interface {
	// Open starts a new form session holding the empty form.
	// Returns domain.ErrUnavailable if no more sessions can be hosted.
	Open(ctx context.Context) (*FormState, error)

	// Get returns the current state of a session.
	// Returns domain.ErrNotFound if the session does not exist or expired.
	Get(ctx context.Context, id string) (*FormState, error)

	// Edit overwrites a field value and re-validates it.
	// Returns domain.ErrValidation if the value kind does not match the field.
	Edit(ctx context.Context, id string, field contact.Field, value contact.Value) (*FormState, error)

	// Blur marks a field as left by the user, revealing its error if any.
	Blur(ctx context.Context, id string, field contact.Field) (*FormState, error)

	// Focus marks a field as being edited again, hiding its error.
	Focus(ctx context.Context, id string, field contact.Field) (*FormState, error)

	// Submit validates the whole form. A rejected submission is reported
	// through SubmitOutcome.Accepted, not as an error.
	Submit(ctx context.Context, id string) (*SubmitOutcome, error)

	// Close discards a session.
	// Returns domain.ErrNotFound if the session does not exist.
	Close(ctx context.Context, id string) error
}

// FormState is a snapshot of one session's form.
type FormState struct {
	SessionID string
	Data      contact.FormData
	Flags     contact.EditFlags
	// Errors holds the inline message of every field whose error is visible.
	Errors map[contact.Field]string
}

// SubmitOutcome holds the result of a submit together with the state left
// behind: the reset form when accepted, the flagged form when rejected.
type SubmitOutcome struct {
	Accepted bool
	Invalid  []contact.Field
	State    *FormState
}
