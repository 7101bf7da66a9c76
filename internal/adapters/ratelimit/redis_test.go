package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T, limit int, window time.Duration) (*Redis, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedis(client, limit, window), server
}

func TestRedis_Allow(t *testing.T) {
	t.Parallel()

	store, server := newRedisStore(t, 5, 15*time.Minute)
	ctx := context.Background()

	for i := range 5 {
		d, err := store.Allow(ctx, "203.0.113.7")
		require.NoError(t, err)
		assert.True(t, d.Allowed)
		assert.Equal(t, 4-i, d.Remaining)
	}

	d, err := store.Allow(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Greater(t, d.RetryAfter, time.Duration(0))
	assert.LessOrEqual(t, d.RetryAfter, 15*time.Minute)

	server.FastForward(15 * time.Minute)

	d, err = store.Allow(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.True(t, d.Allowed, "window resets after expiry")
}

func TestRedis_WindowStartsOnFirstHit(t *testing.T) {
	t.Parallel()

	store, server := newRedisStore(t, 5, time.Minute)

	_, err := store.Allow(context.Background(), "a")
	require.NoError(t, err)

	assert.Equal(t, time.Minute, server.TTL(keyPrefix+"a"))
}

func TestRedis_FailsOpen(t *testing.T) {
	t.Parallel()

	server, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: server.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	store := NewRedis(client, 5, time.Minute)
	server.Close()

	d, allowErr := store.Allow(context.Background(), "a")

	assert.Error(t, allowErr)
	assert.True(t, d.Allowed)
	assert.Error(t, store.HealthCheck(context.Background()))
}

func TestRedis_HealthCheck(t *testing.T) {
	t.Parallel()

	store, _ := newRedisStore(t, 5, time.Minute)

	assert.Equal(t, "redis", store.Name())
	assert.NoError(t, store.HealthCheck(context.Background()))
}

func TestConnect(t *testing.T) {
	t.Parallel()

	server := miniredis.RunT(t)

	client, err := Connect(context.Background(), "redis://"+server.Addr()+"/0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	_, err = Connect(context.Background(), "")
	assert.Error(t, err)

	_, err = Connect(context.Background(), "://bad")
	assert.Error(t, err)
}
