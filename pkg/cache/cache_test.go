package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sceneflow/sceneflow/pkg/diagram"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "k1", []byte("payload"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, hit, err := c.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit {
		t.Fatal("expected hit after Set")
	}
	if string(data) != "payload" {
		t.Errorf("data = %q, want payload", data)
	}

	// Different key stays a miss
	if _, hit, _ := c.Get(ctx, "k2"); hit {
		t.Error("unexpected hit for absent key")
	}

	if err := c.Delete(ctx, "k1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k1"); hit {
		t.Error("hit after Delete")
	}
	// Deleting again is fine
	if err := c.Delete(ctx, "k1"); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "k", []byte("v"), -time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	// Non-positive ttl means no expiration per the interface contract.
	if _, hit, _ := c.Get(ctx, "k"); !hit {
		t.Error("non-positive ttl should mean no expiration")
	}

	if err := c.Set(ctx, "short", []byte("v"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "short"); hit {
		t.Error("expired entry should be a miss")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// Corrupt the entry on disk; the next Get treats it as a miss and
	// evicts it.
	if err := os.WriteFile(c.path("k"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("corrupt: %v", err)
	}
	if _, hit, err := c.Get(ctx, "k"); err != nil || hit {
		t.Errorf("corrupt entry: hit=%v err=%v, want miss", hit, err)
	}
	if _, err := os.Stat(c.path("k")); !os.IsNotExist(err) {
		t.Error("corrupt entry should be evicted")
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "cache")
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("hit after Clear")
	}
	// Cache stays usable after Clear
	if err := c.Set(ctx, "k2", []byte("v2"), 0); err != nil {
		t.Fatalf("Set after Clear: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k2"); !hit {
		t.Error("cache should accept entries after Clear")
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	// Same inputs produce the same key
	opts := LayoutKeyOpts{Geometry: diagram.DefaultGeometry()}
	if k.LayoutKey("hash123", opts) != k.LayoutKey("hash123", opts) {
		t.Error("LayoutKey should be deterministic")
	}

	// Any option change produces a different key
	wide := LayoutKeyOpts{Geometry: diagram.DefaultGeometry()}
	wide.Geometry.NodeWidth = 300
	if k.LayoutKey("hash123", opts) == k.LayoutKey("hash123", wide) {
		t.Error("different geometry should produce different keys")
	}
	themed := opts
	themed.Theme = "custom"
	if k.LayoutKey("hash123", opts) == k.LayoutKey("hash123", themed) {
		t.Error("different theme should produce different keys")
	}

	// Different script hashes produce different keys
	if k.LayoutKey("hash123", opts) == k.LayoutKey("hash456", opts) {
		t.Error("different script hashes should produce different keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "project:demo:")

	key := scoped.LayoutKey("hash123", LayoutKeyOpts{})
	want := "project:demo:" + inner.LayoutKey("hash123", LayoutKeyOpts{})
	if key != want {
		t.Errorf("ScopedKeyer key = %s, want %s", key, want)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Should use DefaultKeyer when inner is nil
	scoped := NewScopedKeyer(nil, "prefix:")
	key := scoped.LayoutKey("h", LayoutKeyOpts{})
	want := "prefix:" + NewDefaultKeyer().LayoutKey("h", LayoutKeyOpts{})
	if key != want {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}

func TestDiagramStore(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if _, err := GetDiagram(ctx, c, "k"); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss, got %v", err)
	}

	d := &diagram.Diagram{
		Nodes: []diagram.Node{{ID: "L", Type: "Label"}},
		Edges: []diagram.Edge{{ID: "edge-L-end-L", Source: "L", Target: "end-L"}},
	}
	if err := PutDiagram(ctx, c, "k", d); err != nil {
		t.Fatalf("PutDiagram: %v", err)
	}

	got, err := GetDiagram(ctx, c, "k")
	if err != nil {
		t.Fatalf("GetDiagram: %v", err)
	}
	if len(got.Nodes) != 1 || got.Nodes[0].ID != "L" {
		t.Errorf("roundtrip nodes = %+v", got.Nodes)
	}
	if len(got.Edges) != 1 || got.Edges[0].ID != "edge-L-end-L" {
		t.Errorf("roundtrip edges = %+v", got.Edges)
	}
}
