// Package cache provides layout result caching for the CLI.
//
// Laying out a large script is cheap but not free, and the CLI is often
// re-run on unchanged inputs. The cache stores finished diagrams keyed by
// a hash of the script bytes and the layout options, so an unchanged
// invocation becomes a single file read.
//
// Two implementations exist:
//   - [FileCache]: entries as files under a directory (the default)
//   - [NullCache]: stores nothing, for --no-cache and tests
//
// Keys are built through the [Keyer] interface; [NewScopedKeyer] adds a
// prefix so separate projects sharing one cache directory never collide.
package cache

import (
	"context"
	"time"

	"github.com/sceneflow/sceneflow/pkg/diagram"
)

// Cache is the storage interface for serialized layout results.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present; an absent key is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// LayoutKeyOpts are the layout inputs that participate in the cache key.
// Anything that changes the produced diagram must be listed here, or
// stale entries would be served across option changes.
type LayoutKeyOpts struct {
	Geometry diagram.Geometry `json:"geometry"`
	Theme    string           `json:"theme,omitempty"`  // theme fingerprint, "" for the default theme
	Source   string           `json:"source,omitempty"` // source text fingerprint, "" when no source is attached
}

// Keyer builds cache keys for layout results.
type Keyer interface {
	// LayoutKey derives the key for a laid-out diagram from the script
	// content hash and the options that shaped the layout.
	LayoutKey(scriptHash string, opts LayoutKeyOpts) string
}

// DefaultKeyer is the stock key scheme: "layout:" plus a hash over the
// script hash and options.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the stock keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey implements Keyer.
func (k *DefaultKeyer) LayoutKey(scriptHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", scriptHash, opts)
}
