// Package health tracks the dependencies the readiness check reports on:
// the CRM client's circuit breaker and, when configured, the Redis store
// behind the rate limiter.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// DefaultCheckTimeout bounds a single health check.
const DefaultCheckTimeout = 2 * time.Second

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout overrides DefaultCheckTimeout.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		r.timeout = d
	}
}

// Registry is a thread-safe implementation of [ports.HealthRegistry].
// Checkers are keyed by name; registering a second checker with the same
// name replaces the first.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
	timeout  time.Duration
}

// New creates an empty health check registry.
func New(opts ...Option) *Registry {
	r := &Registry{timeout: DefaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a health checker. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.checkers {
		if c.Name() == name {
			r.checkers[i] = checker
			return
		}
	}
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every registered check concurrently, each bounded by the
// registry timeout, and returns results keyed by checker name. Nil values
// mean healthy.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	errs := make([]error, len(checkers))
	var wg sync.WaitGroup
	for i, c := range checkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			checkCtx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()
			errs[i] = c.HealthCheck(checkCtx)
		}()
	}
	wg.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}
