package ports

import (
	"context"
	"time"
)

// RateLimitDecision is the verdict for a single request.
type RateLimitDecision struct {
	Allowed bool

	// Limit is the number of requests allowed per window.
	Limit int

	// Remaining is how many more requests the key may make in this window.
	Remaining int

	// RetryAfter is how long the caller should wait when not allowed.
	RetryAfter time.Duration
}

// RateLimiter counts requests per key. Implemented by the in-memory and
// Redis stores.
type RateLimiter interface {
	// Allow records one request for key and reports whether it is within
	// the limit. On a backend error implementations return the error with
	// an allowing decision.
	Allow(ctx context.Context, key string) (RateLimitDecision, error)
}
