package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/aaravmahajanofficial/bike-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/bike-storefront/internal/config"
	"github.com/redis/go-redis/v9"
)

type redisLimiter struct {
	client *redis.Client
	cfg    config.RateConfig
	now    func() time.Time
}

func NewRedisLimiter(client *redis.Client, cfg config.RateConfig, now func() time.Time) Limiter {
	return &redisLimiter{client: client, cfg: cfg, now: now}
}

// Allow keeps one sorted set per key. Scores are attempt times in
// milliseconds, so the window is trimmed with a single range delete.
func (r *redisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	logger := middleware.LoggerFromContext(ctx)

	key = keyPrefix + key
	now := r.now()
	windowStart := now.Add(-r.cfg.WindowSize).UnixMilli()

	pipe := r.client.Pipeline()

	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.UnixMilli()), Member: strconv.FormatInt(now.UnixNano(), 10)})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, r.cfg.WindowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		logger.Error("Redis pipeline execution failed for rate limit", slog.String("key", key), slog.Any("error", err))
		return Result{}, fmt.Errorf("redis pipeline error for rate limit check: %w", err)
	}

	attempts := count.Val()

	if attempts > r.cfg.MaxAttempts {
		scores, err := r.client.ZRangeWithScores(ctx, key, 0, 0).Result()
		if err != nil || len(scores) == 0 {
			logger.Error("Failed to get oldest attempt time for rate limit", slog.String("key", key), slog.Any("error", err))
			return Result{Allowed: false, RetryAfter: r.cfg.WindowSize}, fmt.Errorf("failed to get oldest attempt time: %w", err)
		}

		logger.Warn("Rate limit exceeded", slog.String("key", key), slog.Int64("attempts", attempts))

		return reject(time.UnixMilli(int64(scores[0].Score)), now, r.cfg.WindowSize), nil
	}

	logger.Debug("Rate limit check passed", slog.String("key", key), slog.Int64("attempts", attempts))

	return Result{Allowed: true, Remaining: int(r.cfg.MaxAttempts - attempts)}, nil
}
