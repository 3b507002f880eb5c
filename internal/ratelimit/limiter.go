package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter is a fixed-window request limiter backed by Redis.
// Counting happens in a Lua script so concurrent requests from the same
// client cannot race the check-and-increment. Redis keeps the limit
// consistent across replicas of this service.
type Limiter struct {
	client      *redis.Client
	maxRequests int
	window      time.Duration
}

// counting script: initialize the window on first request, otherwise
// increment while under the limit. Returns {allowed, remaining, reset_unix}.
var allowScript = redis.NewScript(`
	local key = KEYS[1]
	local max_requests = tonumber(ARGV[1])
	local window = tonumber(ARGV[2])
	local current_time = tonumber(ARGV[3])

	local current = redis.call('GET', key)

	if current == false then
		redis.call('SET', key, 1, 'EX', window)
		return {1, max_requests - 1, current_time + window}
	end

	current = tonumber(current)
	if current < max_requests then
		redis.call('INCR', key)
		local ttl = redis.call('TTL', key)
		return {1, max_requests - current - 1, current_time + ttl}
	end

	local ttl = redis.call('TTL', key)
	return {0, 0, current_time + ttl}
`)

// New creates a limiter allowing maxRequests per window
func New(client *redis.Client, maxRequests int, window time.Duration) *Limiter {
	return &Limiter{
		client:      client,
		maxRequests: maxRequests,
		window:      window,
	}
}

// Allow checks if a request from the given key should be allowed
func (l *Limiter) Allow(ctx context.Context, key string) (allowed bool, remaining int, resetTime time.Time, err error) {
	redisKey := fmt.Sprintf("ratelimit:%s", key)

	result, err := allowScript.Run(
		ctx,
		l.client,
		[]string{redisKey},
		l.maxRequests,
		int(l.window.Seconds()),
		time.Now().Unix(),
	).Result()
	if err != nil {
		return false, 0, time.Time{}, fmt.Errorf("rate limit check failed: %w", err)
	}

	resultSlice, ok := result.([]interface{})
	if !ok || len(resultSlice) != 3 {
		return false, 0, time.Time{}, fmt.Errorf("unexpected rate limit script result")
	}

	allowed = resultSlice[0].(int64) == 1
	remaining = int(resultSlice[1].(int64))
	resetTime = time.Unix(resultSlice[2].(int64), 0)

	return allowed, remaining, resetTime, nil
}

// Reset clears the rate limit for a key
func (l *Limiter) Reset(ctx context.Context, key string) error {
	return l.client.Del(ctx, fmt.Sprintf("ratelimit:%s", key)).Err()
}

// MaxRequests returns the per-window request limit
func (l *Limiter) MaxRequests() int {
	return l.maxRequests
}
