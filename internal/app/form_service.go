// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"html"
	"log/slog"

	"github.com/microcosm-cc/bluemonday"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/contact-form-service/internal/domain/contact"
	"github.com/jsamuelsen11/contact-form-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/contact-form-service/internal/ports"
)

// Compile-time check that FormService implements ports.FormService.
var _ ports.FormService = (*FormService)(nil)

// Event names recorded in logs and metrics.
const (
	eventEdit   = "edit"
	eventBlur   = "blur"
	eventFocus  = "focus"
	eventSubmit = "submit"
)

// FormService implements ports.FormService by applying user events to the
// contact.Store held by each session. It handles structured logging and
// metrics; the validation rules live in the contact package.
type FormService struct {
	sessions ports.FormSessions
	logger   *slog.Logger
	metrics  *telemetry.Metrics
	policy   *bluemonday.Policy
}

// Option configures a FormService.
type Option func(*FormService)

// WithMetrics records form event and submission counters. A nil value
// disables recording.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *FormService) {
		s.metrics = m
	}
}

// WithMarkupStripping removes HTML markup from text values before they are
// stored. Entities are decoded again so plain punctuation such as
// apostrophes reaches the validator unchanged.
func WithMarkupStripping() Option {
	return func(s *FormService) {
		s.policy = bluemonday.StrictPolicy()
	}
}

// NewFormService creates a FormService backed by the given session port.
// A nil logger is replaced by a no-op logger.
func NewFormService(sessions ports.FormSessions, logger *slog.Logger, opts ...Option) *FormService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &FormService{
		sessions: sessions,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open starts a new session holding the empty form.
func (s *FormService) Open(ctx context.Context) (*ports.FormState, error) {
	id, err := s.sessions.Create(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to open form session",
			slog.String("operation", "Open"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "form session opened", slog.String("session_id", id))
	return &ports.FormState{
		SessionID: id,
		Errors:    map[contact.Field]string{},
	}, nil
}

// Get returns the current state of a session.
func (s *FormService) Get(ctx context.Context, id string) (*ports.FormState, error) {
	var state *ports.FormState
	err := s.sessions.With(ctx, id, func(st *contact.Store) error {
		state = snapshot(id, st)
		return nil
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to read form session",
			slog.String("operation", "Get"),
			slog.String("session_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return state, nil
}

// Edit overwrites a field value. Text values are stripped of markup first
// when the service was built WithMarkupStripping.
func (s *FormService) Edit(ctx context.Context, id string, field contact.Field, value contact.Value) (*ports.FormState, error) {
	value = s.clean(value)

	return s.apply(ctx, id, eventEdit, field, func(st *contact.Store) error {
		return st.OnEdit(field, value)
	})
}

// Blur reveals the field's error, if any.
func (s *FormService) Blur(ctx context.Context, id string, field contact.Field) (*ports.FormState, error) {
	return s.apply(ctx, id, eventBlur, field, func(st *contact.Store) error {
		st.OnBlur(field)
		return nil
	})
}

// Focus hides the field's error while it is edited again.
func (s *FormService) Focus(ctx context.Context, id string, field contact.Field) (*ports.FormState, error) {
	return s.apply(ctx, id, eventFocus, field, func(st *contact.Store) error {
		st.OnFocus(field)
		return nil
	})
}

// Submit validates the whole form and resets it when every field passes.
func (s *FormService) Submit(ctx context.Context, id string) (*ports.SubmitOutcome, error) {
	var (
		res   contact.SubmitResult
		state *ports.FormState
	)
	err := s.sessions.With(ctx, id, func(st *contact.Store) error {
		res = st.OnSubmit()
		state = snapshot(id, st)
		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to submit form",
			slog.String("operation", "Submit"),
			slog.String("session_id", id),
			slog.Any("error", err),
		)
		s.recordEvent(ctx, eventSubmit, "", err)
		return nil, err
	}

	s.recordEvent(ctx, eventSubmit, "", nil)
	s.recordSubmission(ctx, res.Accepted)

	if res.Accepted {
		s.logger.InfoContext(ctx, "contact form submitted",
			slog.String("session_id", id),
			slog.String("query_type", res.Submitted.QueryType),
			slog.String("email", res.Submitted.Email),
			slog.Int("message_length", contact.Length(res.Submitted.Message)),
		)
	} else {
		invalid := make([]string, len(res.Invalid))
		for i, f := range res.Invalid {
			invalid[i] = f.String()
		}
		s.logger.InfoContext(ctx, "contact form rejected",
			slog.String("session_id", id),
			slog.Any("invalid_fields", invalid),
		)
	}

	return &ports.SubmitOutcome{
		Accepted: res.Accepted,
		Invalid:  res.Invalid,
		State:    state,
	}, nil
}

// Close discards a session.
func (s *FormService) Close(ctx context.Context, id string) error {
	if err := s.sessions.Delete(ctx, id); err != nil {
		s.logger.WarnContext(ctx, "failed to close form session",
			slog.String("operation", "Close"),
			slog.String("session_id", id),
			slog.Any("error", err),
		)
		return err
	}

	s.logger.InfoContext(ctx, "form session closed", slog.String("session_id", id))
	return nil
}

// apply runs a single field event against the session and returns the
// resulting state.
func (s *FormService) apply(
	ctx context.Context,
	id, event string,
	field contact.Field,
	fn func(*contact.Store) error,
) (*ports.FormState, error) {
	var state *ports.FormState
	err := s.sessions.With(ctx, id, func(st *contact.Store) error {
		if err := fn(st); err != nil {
			return err
		}
		state = snapshot(id, st)
		return nil
	})
	s.recordEvent(ctx, event, field, err)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to apply form event",
			slog.String("operation", event),
			slog.String("session_id", id),
			slog.String("field", field.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.DebugContext(ctx, "form event applied",
		slog.String("event", event),
		slog.String("session_id", id),
		slog.String("field", field.String()),
	)
	return state, nil
}

func (s *FormService) clean(v contact.Value) contact.Value {
	if s.policy == nil {
		return v
	}
	text, ok := v.AsText()
	if !ok {
		return v
	}
	return contact.Text(html.UnescapeString(s.policy.Sanitize(text)))
}

func (s *FormService) recordEvent(ctx context.Context, event string, field contact.Field, err error) {
	if s.metrics == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	s.metrics.FormEventsTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrFormEvent.String(event),
		telemetry.AttrFormField.String(field.String()),
		telemetry.AttrResult.String(result),
	))
}

func (s *FormService) recordSubmission(ctx context.Context, accepted bool) {
	if s.metrics == nil {
		return
	}
	result := "rejected"
	if accepted {
		result = "accepted"
	}
	s.metrics.FormSubmissionsTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrResult.String(result),
	))
}

// snapshot copies the store state into a port-level FormState.
func snapshot(id string, st *contact.Store) *ports.FormState {
	return &ports.FormState{
		SessionID: id,
		Data:      st.Data(),
		Flags:     st.Flags(),
		Errors:    st.VisibleErrors(),
	}
}
