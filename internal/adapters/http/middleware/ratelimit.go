package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/contact-form-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/contact-form-service/internal/domain"
)

// evictEvery is how many Allow calls pass between sweeps of idle buckets.
const evictEvery = 512

const defaultLimiterIdleTTL = 10 * time.Minute

// KeyFunc derives the rate-limit bucket key for a request. An empty key
// bypasses limiting.
type KeyFunc func(*http.Request) string

// RateLimitOptions configures the RateLimit middleware.
type RateLimitOptions struct {
	// EventsPerSecond is the sustained rate per key. Zero disables limiting.
	EventsPerSecond float64
	Burst           int
	IdleTTL         time.Duration
	// Key defaults to ClientIP.
	Key KeyFunc
	// Now is used by tests. Defaults to time.Now.
	Now func() time.Time
}

// Limiter applies a token bucket per key and periodically evicts idle
// buckets.
type Limiter struct {
	limit   rate.Limit
	burst   int
	idleTTL time.Duration

	mu    sync.Mutex
	byKey map[string]*bucket
	hits  uint64
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLimiter creates a key-based limiter. It returns nil when rps or burst is
// not positive; a nil *Limiter allows everything.
func NewLimiter(rps float64, burst int, idleTTL time.Duration) *Limiter {
	if rps <= 0 || burst <= 0 {
		return nil
	}
	if idleTTL <= 0 {
		idleTTL = defaultLimiterIdleTTL
	}
	return &Limiter{
		limit:   rate.Limit(rps),
		burst:   burst,
		idleTTL: idleTTL,
		byKey:   make(map[string]*bucket),
	}
}

// Allow reports whether one token can be consumed for key at now.
func (l *Limiter) Allow(key string, now time.Time) bool {
	if l == nil {
		return true
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.byKey[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.byKey[key] = b
	}
	b.lastSeen = now
	allowed := b.limiter.AllowN(now, 1)

	l.hits++
	if l.hits%evictEvery == 0 {
		l.evict(now)
	}

	return allowed
}

// Len returns the number of tracked keys.
func (l *Limiter) Len() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.byKey)
}

// evict drops buckets idle longer than idleTTL. Must be called with l.mu held.
func (l *Limiter) evict(now time.Time) {
	cutoff := now.Add(-l.idleTTL)
	for k, b := range l.byKey {
		if b.lastSeen.Before(cutoff) {
			delete(l.byKey, k)
		}
	}
}

// RateLimit returns middleware that rejects requests exceeding the per-key
// event rate with an RFC 9457 429 response. Safe and idempotent methods (GET,
// HEAD, OPTIONS) are never limited so probes and page loads always succeed.
func RateLimit(opts RateLimitOptions, logger *slog.Logger) func(http.Handler) http.Handler {
	limiter := NewLimiter(opts.EventsPerSecond, opts.Burst, opts.IdleTTL)
	key := opts.Key
	if key == nil {
		key = ClientIP
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			if !limiter.Allow(key(r), now()) {
				logger.WarnContext(r.Context(), "rate limit exceeded",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)
				w.Header().Set("Retry-After", "1")
				dto.WriteErrorResponse(w, r, domain.ErrRateLimited)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP keys requests by the remote address host.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
