package ratelimit

import "time"

// Limit describes how many requests a single caller may make per window.
// Windows with a zero or negative limit are not enforced.
type Limit struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

type RateLimiter interface {
	Allow(key string, limit Limit) (bool, error)
	GetRemaining(key string, window time.Duration) (int64, error)
	Reset(key string) error
}
