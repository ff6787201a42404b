package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheClosed is returned by a memory cache after Close.
var ErrCacheClosed = errors.New("cache is closed")

// Cache is the key-value store behind session state. Values are stored as
// JSON; a missing key is reported as found=false with a nil error.
type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const (
	CartKeyPrefix     = "cart"
	CheckoutKeyPrefix = "checkout"
)
