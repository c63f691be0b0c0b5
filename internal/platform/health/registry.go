// Package health provides a thread-safe health check registry. The readiness
// endpoint uses it to decide whether the service can accept form traffic.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/contact-form-service/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

const (
	defaultCheckTimeout   = 2 * time.Second
	defaultMaxConcurrency = 4
)

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout bounds each individual health check. A non-positive value
// leaves checks bounded only by the caller's context.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		r.checkTimeout = d
	}
}

// WithMaxConcurrency sets how many checks may run at once. Values below 1
// are ignored.
func WithMaxConcurrency(n int) Option {
	return func(r *Registry) {
		if n >= 1 {
			r.maxConcurrency = n
		}
	}
}

// Registry is a thread-safe implementation of [ports.HealthRegistry].
// Components that implement [ports.HealthChecker] are registered at startup
// and checked on each readiness probe.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker

	checkTimeout   time.Duration
	maxConcurrency int
}

// New creates an empty health check registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		checkTimeout:   defaultCheckTimeout,
		maxConcurrency: defaultMaxConcurrency,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll executes all registered health checks and returns results keyed by
// checker name. Nil values indicate healthy components. Checks run
// concurrently, at most maxConcurrency at a time. When two checkers share a
// name the one registered last wins.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	errs := r.run(ctx, checkers)

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}

// run checks every checker with bounded concurrency. The returned slice is
// index-aligned with checkers. A checker still waiting for a slot when ctx is
// done reports ctx.Err() without being called.
func (r *Registry) run(ctx context.Context, checkers []ports.HealthChecker) []error {
	errs := make([]error, len(checkers))
	sem := make(chan struct{}, r.maxConcurrency)
	var wg sync.WaitGroup

	for i, c := range checkers {
		wg.Add(1)
		go func(idx int, checker ports.HealthChecker) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				errs[idx] = ctx.Err()
				return
			}

			errs[idx] = r.check(ctx, checker)
		}(i, c)
	}

	wg.Wait()
	return errs
}

func (r *Registry) check(ctx context.Context, checker ports.HealthChecker) error {
	if r.checkTimeout <= 0 {
		return checker.HealthCheck(ctx)
	}
	ctx, cancel := context.WithTimeout(ctx, r.checkTimeout)
	defer cancel()
	return checker.HealthCheck(ctx)
}
