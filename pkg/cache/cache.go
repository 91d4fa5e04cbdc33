package cache

import (
	"context"
	"time"
)

// Cache is a small key-value cache with TTL expiry. A missing key is
// reported as ("", nil), not an error, so callers can fall through to the
// source of truth without error-type checks.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}
