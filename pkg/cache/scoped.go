package cache

// ScopedKeyer wraps a Keyer with a prefix so distinct projects sharing
// one cache directory keep separate namespaces.
//
// Example usage:
//
//	// Per-project keys
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "project:demo:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys. A nil inner keyer
// defaults to the stock scheme.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// LayoutKey generates a prefixed key for a layout result.
func (k *ScopedKeyer) LayoutKey(scriptHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(scriptHash, opts)
}
