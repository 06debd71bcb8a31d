package cache

import "errors"

// Sentinel errors for caching operations.
var (
	// ErrCacheMiss is returned by typed helpers when an item is not in
	// the cache. The raw Cache interface reports misses through its
	// boolean return instead.
	ErrCacheMiss = errors.New("cache miss")
)
