// Package ratelimit implements the per-client request limiter behind
// ports.RateLimiter, with an in-process store and a Redis store shared by
// every replica.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/ports"
)

// Compile-time interface check.
var _ ports.RateLimiter = (*Memory)(nil)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Memory is a token bucket per key: limit tokens, refilled evenly over
// window. Keys idle for a full window are evicted. Safe for concurrent use.
type Memory struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	limit     int
	window    time.Duration
	every     rate.Limit
	now       func() time.Time
	lastSweep time.Time
}

// MemoryOption customizes a Memory store.
type MemoryOption func(*Memory)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) MemoryOption {
	return func(m *Memory) { m.now = now }
}

// NewMemory creates a store allowing limit requests per window per key.
func NewMemory(limit int, window time.Duration, opts ...MemoryOption) *Memory {
	limit = max(limit, 1)
	m := &Memory{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
		every:    rate.Every(window / time.Duration(limit)),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.lastSweep = m.now()
	return m
}

// Allow never returns an error.
func (m *Memory) Allow(_ context.Context, key string) (ports.RateLimitDecision, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweep(now)

	v, ok := m.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(m.every, m.limit)}
		m.visitors[key] = v
	}
	v.lastSeen = now

	d := ports.RateLimitDecision{Limit: m.limit}
	if v.limiter.AllowN(now, 1) {
		d.Allowed = true
		d.Remaining = int(v.limiter.TokensAt(now))
		return d, nil
	}

	r := v.limiter.ReserveN(now, 1)
	d.RetryAfter = r.DelayFrom(now)
	r.CancelAt(now)
	return d, nil
}

// Len returns the number of tracked keys.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.visitors)
}

// sweep drops idle keys at most once per window. Callers hold mu.
func (m *Memory) sweep(now time.Time) {
	if now.Sub(m.lastSweep) < m.window {
		return
	}
	for k, v := range m.visitors {
		if now.Sub(v.lastSeen) >= m.window {
			delete(m.visitors, k)
		}
	}
	m.lastSweep = now
}
