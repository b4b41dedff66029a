package domain

import (
	"context"
	"time"
)

// ResponseCache stores rendered responses by key.
type ResponseCache interface {
	// Get returns the cached value, with ok false on a miss.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
