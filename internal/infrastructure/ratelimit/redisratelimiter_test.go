package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisRateLimiter_Allow_PerMinute(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	limit := Limit{RequestsPerMinute: 5}
	key := "renewal:203.0.113.9"

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(key, limit)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(key, limit)
	require.NoError(t, err)
	assert.False(t, allowed, "6th request should be denied")
}

func TestRedisRateLimiter_Allow_IndependentKeys(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	limit := Limit{RequestsPerMinute: 1}

	allowed, err := limiter.Allow("renewal:10.0.0.1", limit)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow("renewal:10.0.0.1", limit)
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = limiter.Allow("renewal:10.0.0.2", limit)
	require.NoError(t, err)
	assert.True(t, allowed, "other callers keep their own budget")
}

func TestRedisRateLimiter_ZeroLimitDisablesWindow(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	limit := Limit{}
	for i := 0; i < 20; i++ {
		allowed, err := limiter.Allow("renewal:unlimited", limit)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	limit := Limit{RequestsPerMinute: 1}
	key := "renewal:198.51.100.4"

	allowed, err := limiter.Allow(key, limit)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(key, limit)
	require.NoError(t, err)
	assert.False(t, allowed)

	require.NoError(t, limiter.Reset(key))

	allowed, err = limiter.Allow(key, limit)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiter_GetRemaining(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	limit := Limit{RequestsPerMinute: 10}
	key := "renewal:192.0.2.7"

	for i := 0; i < 3; i++ {
		_, err := limiter.Allow(key, limit)
		require.NoError(t, err)
	}

	used, err := limiter.GetRemaining(key, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(3), used)
}
