package cache_test

import (
	"testing"
	"time"

	"github.com/aaravmahajanofficial/bike-storefront/internal/cache"
	"github.com/aaravmahajanofficial/bike-storefront/internal/config"
	"github.com/aaravmahajanofficial/bike-storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := t.Context()
	key := cache.Key(cache.CartKeyPrefix, "s1")

	t.Run("Success - Set Then Get", func(t *testing.T) {
		// Arrange
		c := cache.NewMemoryCache(time.Hour)
		want := sampleCart()

		// Act
		require.NoError(t, c.Set(ctx, key, want, 0))

		var got models.Cart
		found, err := c.Get(ctx, key, &got)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, want, got)
	})

	t.Run("Success - Missing Key", func(t *testing.T) {
		c := cache.NewMemoryCache(time.Hour)

		var got models.Cart
		found, err := c.Get(ctx, key, &got)

		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Success - Expired Key Is Missing", func(t *testing.T) {
		c := cache.NewMemoryCache(time.Hour)
		require.NoError(t, c.Set(ctx, key, sampleCart(), time.Nanosecond))

		time.Sleep(time.Millisecond)

		_, found, err := c.Raw(key)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Failure - Corrupt Value", func(t *testing.T) {
		c := cache.NewMemoryCache(time.Hour)
		require.NoError(t, c.SetRaw(key, []byte("{not json"), 0))

		var got models.Cart
		found, err := c.Get(ctx, key, &got)

		require.Error(t, err)
		assert.False(t, found)
	})

	t.Run("Success - Delete", func(t *testing.T) {
		c := cache.NewMemoryCache(time.Hour)
		require.NoError(t, c.Set(ctx, key, sampleCart(), 0))
		require.NoError(t, c.Delete(ctx, key))

		_, found, err := c.Raw(key)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Failure - Closed", func(t *testing.T) {
		c := cache.NewMemoryCache(time.Hour)
		require.NoError(t, c.Close())

		assert.ErrorIs(t, c.Set(ctx, key, sampleCart(), 0), cache.ErrCacheClosed)
		assert.ErrorIs(t, c.Ping(ctx), cache.ErrCacheClosed)
	})
}

func TestNew(t *testing.T) {
	logger := newDiscardLogger()

	t.Run("Success - Memory Backend", func(t *testing.T) {
		cfg := &config.Config{Cache: config.CacheConfig{Backend: config.BackendMemory, DefaultTTL: time.Hour}}

		c, client := cache.New(t.Context(), cfg, logger)

		assert.IsType(t, &cache.MemoryCache{}, c)
		assert.Nil(t, client)
	})

	t.Run("Success - Unreachable Redis Falls Back To Memory", func(t *testing.T) {
		cfg := &config.Config{
			Cache:        config.CacheConfig{Backend: config.BackendRedis, DefaultTTL: time.Hour},
			RedisConnect: config.RedisConnect{Host: "127.0.0.1", Port: "1"},
		}

		c, client := cache.New(t.Context(), cfg, logger)

		assert.IsType(t, &cache.MemoryCache{}, c)
		assert.Nil(t, client)
	})
}
