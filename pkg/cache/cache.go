package cache

import (
	"context"
	"time"
)

// Cache is a TTL-bounded key-value store. Get reports a clean miss as
// (nil, false, nil); errors are store failures, not misses
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
