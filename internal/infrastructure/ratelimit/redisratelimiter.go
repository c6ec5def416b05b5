package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter counts requests in fixed windows, one redis counter per
// caller, window size and bucket. The first hit in a bucket creates the
// counter with a TTL, so idle callers cost nothing. Shields the
// unauthenticated renewal endpoints.
type RedisRateLimiter struct {
	client *redis.Client
}

func NewRedisRateLimiter(client *redis.Client) RateLimiter {
	return &RedisRateLimiter{client: client}
}

func (l *RedisRateLimiter) Allow(key string, limit Limit) (bool, error) {
	now := time.Now()

	windows := []struct {
		size  time.Duration
		limit int
	}{
		{time.Minute, limit.RequestsPerMinute},
		{time.Hour, limit.RequestsPerHour},
	}

	for _, w := range windows {
		if w.limit <= 0 {
			continue
		}
		count, err := l.hit(key, w.size, now)
		if err != nil {
			return false, err
		}
		if count > int64(w.limit) {
			return false, nil
		}
	}

	return true, nil
}

// hit increments the counter of the current bucket and returns the new count.
func (l *RedisRateLimiter) hit(key string, window time.Duration, now time.Time) (int64, error) {
	ctx := context.Background()
	bucket := bucketKey(key, window, now)

	pipe := l.client.Pipeline()
	incr := pipe.Incr(ctx, bucket)
	pipe.Expire(ctx, bucket, window+time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to count request: %w", err)
	}

	return incr.Val(), nil
}

// GetRemaining reports how many requests the current bucket has seen.
func (l *RedisRateLimiter) GetRemaining(key string, window time.Duration) (int64, error) {
	ctx := context.Background()

	count, err := l.client.Get(ctx, bucketKey(key, window, time.Now())).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read counter: %w", err)
	}

	return count, nil
}

// Reset drops every bucket of the given caller.
func (l *RedisRateLimiter) Reset(key string) error {
	ctx := context.Background()

	iter := l.client.Scan(ctx, 0, fmt.Sprintf("ratelimit:%s:*", key), 0).Iterator()
	for iter.Next(ctx) {
		if err := l.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete key %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan keys: %w", err)
	}

	return nil
}

func bucketKey(key string, window time.Duration, now time.Time) string {
	bucket := now.Unix() / int64(window.Seconds())
	return fmt.Sprintf("ratelimit:%s:%s:%d", key, window, bucket)
}
