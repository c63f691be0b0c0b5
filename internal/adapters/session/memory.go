// Package session provides the in-memory form session adapter. Each session
// owns one contact.Store guarded by its own mutex; idle sessions are evicted
// by a background cleanup loop.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/contact-form-service/internal/domain"
	"github.com/jsamuelsen11/contact-form-service/internal/domain/contact"
	"github.com/jsamuelsen11/contact-form-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.FormSessions  = (*MemoryStore)(nil)
	_ ports.HealthChecker = (*MemoryStore)(nil)
)

// errClosed is reported by HealthCheck after Close.
var errClosed = errors.New("session store closed")

const healthCheckName = "form-sessions"

// Options configures a MemoryStore.
type Options struct {
	// TTL is how long a session may stay idle before it is evicted.
	TTL time.Duration
	// CleanupInterval is the period of the eviction loop. Zero disables the
	// loop; expired sessions are then only dropped when accessed.
	CleanupInterval time.Duration
	// MaxSessions caps the number of live sessions. Zero means unlimited.
	MaxSessions int
	// Now overrides the clock. Defaults to time.Now.
	Now func() time.Time
}

type entry struct {
	mu       sync.Mutex
	store    *contact.Store
	lastSeen time.Time
}

// MemoryStore implements ports.FormSessions with an in-memory map.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	opts     Options
	logger   *slog.Logger

	ticker    *time.Ticker
	done      chan struct{}
	closeOnce sync.Once
	closed    bool
}

// NewMemoryStore creates a session store and starts its cleanup loop when
// opts.CleanupInterval is positive. Call Close to stop the loop.
func NewMemoryStore(opts Options, logger *slog.Logger) *MemoryStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	m := &MemoryStore{
		sessions: make(map[string]*entry),
		opts:     opts,
		logger:   logger,
		done:     make(chan struct{}),
	}

	if opts.CleanupInterval > 0 {
		m.ticker = time.NewTicker(opts.CleanupInterval)
		go m.cleanupLoop()
	}

	return m
}

// Create allocates a new session holding an empty form.
func (m *MemoryStore) Create(ctx context.Context) (string, error) {
	id := uuid.NewString()
	now := m.opts.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.opts.MaxSessions > 0 && len(m.sessions) >= m.opts.MaxSessions {
		return "", fmt.Errorf("session limit %d reached: %w", m.opts.MaxSessions, domain.ErrUnavailable)
	}

	m.sessions[id] = &entry{store: contact.NewStore(), lastSeen: now}
	m.logger.DebugContext(ctx, "session created", slog.String("session_id", id))
	return id, nil
}

// With runs fn against the session's store while holding the session lock.
// Accessing a session refreshes its idle timer.
func (m *MemoryStore) With(ctx context.Context, id string, fn func(*contact.Store) error) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	e.lastSeen = m.opts.Now()
	return fn(e.store)
}

// Delete removes a session.
func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return notFound(id)
	}
	delete(m.sessions, id)
	m.logger.DebugContext(ctx, "session deleted", slog.String("session_id", id))
	return nil
}

// Len returns the number of sessions currently held, including expired ones
// not yet evicted.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Name implements ports.HealthChecker.
func (m *MemoryStore) Name() string {
	return healthCheckName
}

// HealthCheck implements ports.HealthChecker. The store is healthy until
// Close is called.
func (m *MemoryStore) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return errClosed
	}
	return nil
}

// Close stops the cleanup loop. It is safe to call more than once.
func (m *MemoryStore) Close() error {
	m.closeOnce.Do(func() {
		m.mu.Lock()
		m.closed = true
		m.mu.Unlock()

		if m.ticker != nil {
			m.ticker.Stop()
		}
		close(m.done)
	})
	return nil
}

// lookup returns the live entry for id, dropping it if it has expired.
func (m *MemoryStore) lookup(id string) (*entry, error) {
	m.mu.RLock()
	e, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, notFound(id)
	}

	if m.expired(e, m.opts.Now()) {
		m.mu.Lock()
		// Only drop the entry that was seen as expired.
		if cur, ok := m.sessions[id]; ok && cur == e {
			delete(m.sessions, id)
		}
		m.mu.Unlock()
		return nil, notFound(id)
	}

	return e, nil
}

func (m *MemoryStore) expired(e *entry, now time.Time) bool {
	if m.opts.TTL <= 0 {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return now.Sub(e.lastSeen) > m.opts.TTL
}

func (m *MemoryStore) cleanupLoop() {
	for {
		select {
		case <-m.ticker.C:
			m.evictExpired()
		case <-m.done:
			return
		}
	}
}

// evictExpired removes every session idle for longer than the TTL.
func (m *MemoryStore) evictExpired() int {
	now := m.opts.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for id, e := range m.sessions {
		if m.expired(e, now) {
			delete(m.sessions, id)
			evicted++
		}
	}
	if evicted > 0 {
		m.logger.Debug("expired sessions evicted", slog.Int("count", evicted))
	}
	return evicted
}

func notFound(id string) error {
	return fmt.Errorf("session %q: %w", id, domain.ErrNotFound)
}
