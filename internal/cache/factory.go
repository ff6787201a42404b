package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/bike-storefront/internal/config"
	"github.com/redis/go-redis/v9"
)

const pingTimeout = 3 * time.Second

// New picks the backend named in cfg. When Redis is selected but cannot be
// reached the memory backend is used instead, and the returned client is nil.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Cache, *redis.Client) {
	if cfg.Cache.Backend != config.BackendRedis {
		logger.Info("session storage enabled", slog.String("backend", config.BackendMemory), slog.Duration("ttl", cfg.Cache.DefaultTTL))
		return NewMemoryCache(cfg.Cache.DefaultTTL), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisConnect.Addr(),
		Username: cfg.RedisConnect.Username,
		Password: cfg.RedisConnect.Password,
		DB:       cfg.RedisConnect.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("failed to connect to redis, falling back to memory storage",
			slog.String("addr", cfg.RedisConnect.Addr()),
			slog.String("error", err.Error()))

		_ = client.Close()

		return NewMemoryCache(cfg.Cache.DefaultTTL), nil
	}

	logger.Info("session storage enabled", slog.String("backend", config.BackendRedis), slog.String("addr", cfg.RedisConnect.Addr()))

	return NewRedisCache(client, &cfg.Cache), client
}
