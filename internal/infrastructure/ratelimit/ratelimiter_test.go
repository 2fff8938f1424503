package ratelimit

import (
	"context"
	"testing"

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

func assertLimiterCaps(t *testing.T, limiter RateLimiter) {
	t.Helper()
	ctx := context.Background()
	config := RateLimitConfig{RequestsPerMinute: 3}

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "emp:7", config)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "emp:7", config)
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = limiter.Allow(ctx, "emp:8", config)
	require.NoError(t, err)
	assert.True(t, allowed, "keys are limited independently")

	require.NoError(t, limiter.Reset(ctx, "emp:7"))
	allowed, err = limiter.Allow(ctx, "emp:7", config)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryRateLimiter(t *testing.T) {
	assertLimiterCaps(t, NewMemoryRateLimiter())
}

func TestRedisRateLimiter(t *testing.T) {
	assertLimiterCaps(t, NewRedisRateLimiter(setupTestRedis(t)))
}

func TestRateLimiter_DisabledWindows(t *testing.T) {
	allowed, err := NewMemoryRateLimiter().Allow(context.Background(), "k", RateLimitConfig{})
	require.NoError(t, err)
	assert.True(t, allowed)
}
