package ratelimit

import (
	"context"
	"time"

	"github.com/aaravmahajanofficial/bike-storefront/internal/config"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "payment_attempts:"

// Result describes one attempt. RetryAfter is only set when the attempt was
// rejected.
type Result struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter counts attempts per key over a sliding window. Rejected attempts
// are counted too.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

// New returns a Redis backed limiter when a client is available, otherwise
// an in-process one.
func New(cfg config.RateConfig, client *redis.Client) Limiter {
	if client != nil {
		return NewRedisLimiter(client, cfg, time.Now)
	}

	return NewMemoryLimiter(cfg, time.Now)
}

func reject(oldest time.Time, now time.Time, window time.Duration) Result {
	return Result{Allowed: false, RetryAfter: max(oldest.Add(window).Sub(now), 0)}
}
