// Package ratelimit throttles requests per caller over sliding windows.
package ratelimit

import "context"

// RateLimitConfig caps requests per window. A non-positive cap disables that
// window.
type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

type RateLimiter interface {
	// Allow records a request for key and reports whether it fits every
	// configured window.
	Allow(ctx context.Context, key string, config RateLimitConfig) (bool, error)
	Reset(ctx context.Context, key string) error
}
