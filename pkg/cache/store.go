package cache

import (
	"context"
	"time"

	"github.com/sceneflow/sceneflow/pkg/diagram"
)

// DefaultTTL is how long stored diagrams stay valid. Keys already encode
// every layout input, so expiry only bounds disk growth.
const DefaultTTL = 30 * 24 * time.Hour

// GetDiagram retrieves and decodes a cached diagram.
// Returns ErrCacheMiss when the key is absent. A present entry that no
// longer decodes is treated as a miss after eviction, not an error.
func GetDiagram(ctx context.Context, c Cache, key string) (*diagram.Diagram, error) {
	data, ok, err := c.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCacheMiss
	}
	d, err := diagram.Unmarshal(data)
	if err != nil {
		_ = c.Delete(ctx, key)
		return nil, ErrCacheMiss
	}
	return d, nil
}

// PutDiagram encodes and stores a diagram under the given key.
func PutDiagram(ctx context.Context, c Cache, key string, d *diagram.Diagram) error {
	data, err := diagram.Marshal(d)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, data, DefaultTTL)
}
