package cache

import (
	"context"
	"time"
)

// NullCache discards every write and misses every read. The pipeline falls
// back to it when caching is disabled (--no-cache, cache.disabled in the
// config, or no usable cache directory), so layout always recomputes.
type NullCache struct{}

// NewNullCache returns a cache that never stores layout results.
func NewNullCache() *NullCache {
	return &NullCache{}
}

// Get reports a miss for every key.
func (*NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the entry.
func (*NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete is a no-op; there is never anything to delete.
func (*NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Close is a no-op.
func (*NullCache) Close() error {
	return nil
}

var _ Cache = (*NullCache)(nil)
