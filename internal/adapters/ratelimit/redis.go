package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.RateLimiter   = (*Redis)(nil)
	_ ports.HealthChecker = (*Redis)(nil)
)

const keyPrefix = "moonhaus:ratelimit:"

// Redis is a fixed-window counter per key shared across replicas.
type Redis struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// Connect parses url, pings the server and returns the client.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	if url == "" {
		return nil, fmt.Errorf("redis url must not be empty")
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return client, nil
}

// NewRedis creates a store allowing limit requests per window per key.
func NewRedis(client *redis.Client, limit int, window time.Duration) *Redis {
	return &Redis{client: client, limit: limit, window: window}
}

// Allow increments the key's counter, starting the window on the first hit.
// Redis errors fail open: the decision allows the request and the error is
// returned for logging.
func (r *Redis) Allow(ctx context.Context, key string) (ports.RateLimitDecision, error) {
	open := ports.RateLimitDecision{Allowed: true, Limit: r.limit, Remaining: r.limit}
	k := keyPrefix + key

	count, err := r.client.Incr(ctx, k).Result()
	if err != nil {
		return open, fmt.Errorf("incrementing %s: %w", k, err)
	}
	if count == 1 {
		if err := r.client.PExpire(ctx, k, r.window).Err(); err != nil {
			return open, fmt.Errorf("setting expiry on %s: %w", k, err)
		}
	}

	d := ports.RateLimitDecision{Limit: r.limit}
	if count <= int64(r.limit) {
		d.Allowed = true
		d.Remaining = r.limit - int(count)
		return d, nil
	}

	ttl, err := r.client.PTTL(ctx, k).Result()
	if err != nil || ttl <= 0 {
		// A key without expiry would block forever; restart the window.
		_ = r.client.PExpire(ctx, k, r.window).Err()
		ttl = r.window
	}
	d.RetryAfter = ttl
	return d, nil
}

// Name returns "redis".
func (r *Redis) Name() string { return "redis" }

// HealthCheck pings the server.
func (r *Redis) HealthCheck(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	return nil
}
