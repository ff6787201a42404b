package utils

import (
	"context"
	"time"
)

const DefaultStorageTimeout = 3 * time.Second

// WithStorageTimeout bounds a single key-value round trip.
func WithStorageTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultStorageTimeout)
}
