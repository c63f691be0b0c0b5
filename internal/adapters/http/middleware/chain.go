package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/contact-form-service/internal/platform/telemetry"
)

// Chain composes middleware into one. The first argument is outermost:
//
//	Chain(Recovery, RequestID, Logging)(handler)
//
// is Recovery(RequestID(Logging(handler))).
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// StackOptions configures the contact form service pipeline built by Stack.
type StackOptions struct {
	Logger *slog.Logger
	// Metrics may be nil when telemetry is disabled.
	Metrics   *telemetry.Metrics
	RateLimit RateLimitOptions
	// RequestTimeout bounds each request. Zero disables the deadline.
	RequestTimeout time.Duration
}

// Stack returns the service middleware pipeline:
//
//	Recovery -> RequestID -> CorrelationID -> OpenTelemetry -> Logging -> RateLimit -> Timeout
//
// Rejected form events are still logged and traced because RateLimit sits
// inside Logging and OpenTelemetry.
func Stack(opts StackOptions) func(http.Handler) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	mws := []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(opts.Metrics),
		Logging(logger),
		RateLimit(opts.RateLimit, logger),
	}
	if opts.RequestTimeout > 0 {
		mws = append(mws, Timeout(opts.RequestTimeout))
	}
	return Chain(mws...)
}
