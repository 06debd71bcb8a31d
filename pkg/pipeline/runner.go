package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/sceneflow/sceneflow/pkg/cache"
	"github.com/sceneflow/sceneflow/pkg/diagram"
	"github.com/sceneflow/sceneflow/pkg/display"
	"github.com/sceneflow/sceneflow/pkg/errors"
	"github.com/sceneflow/sceneflow/pkg/layout"
	"github.com/sceneflow/sceneflow/pkg/script"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → layout pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{RunID: uuid.NewString()}

	// Stage 1: Load
	loadStart := time.Now()
	s, raw, err := r.Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Script = s
	result.ScriptHash = cache.Hash(raw)
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.BlockCount = len(s.Blocks)

	opts.Logger.Info("loaded script",
		"run_id", result.RunID,
		"blocks", len(s.Blocks),
		"nodes", s.Count(),
		"duration", result.Stats.LoadTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	d, hit, err := r.LayoutWithCacheInfo(ctx, s, result.ScriptHash, opts)
	if err != nil {
		return nil, err
	}
	result.Diagram = d
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.NodeCount = len(d.Nodes)
	result.Stats.EdgeCount = len(d.Edges)
	result.Stats.Diagnostics = len(d.Diagnostics)
	result.CacheInfo.LayoutHit = hit

	opts.Logger.Info("computed layout",
		"run_id", result.RunID,
		"nodes", len(d.Nodes),
		"edges", len(d.Edges),
		"cache_hit", hit,
		"duration", result.Stats.LayoutTime)
	for _, diag := range d.Diagnostics {
		opts.Logger.Warn("layout diagnostic", "detail", diag)
	}

	return result, nil
}

// Load reads and validates the script tree. It returns the raw bytes
// alongside the parsed tree so callers can derive content hashes.
func (r *Runner) Load(ctx context.Context, opts Options) (*script.Script, []byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, nil, err
	}

	raw := opts.ScriptData
	if opts.ScriptPath != "" {
		data, err := os.ReadFile(opts.ScriptPath)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "script file %s not found", opts.ScriptPath)
			}
			return nil, nil, errors.Wrap(errors.ErrCodeInternal, err, "cannot read script %s", opts.ScriptPath)
		}
		raw = data
	}

	s, err := script.Unmarshal(raw)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "script is not valid JSON")
	}
	if err := s.Validate(); err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidScript, err, "script failed validation")
	}
	if err := validateNodeIDs(s); err != nil {
		return nil, nil, err
	}
	return s, raw, nil
}

// validateNodeIDs rejects node ids that would produce unusable edge and
// terminal ids downstream. The layout engine itself tolerates any string;
// this boundary check keeps garbage out of persisted diagrams.
func validateNodeIDs(s *script.Script) error {
	var bad error
	s.Walk(func(n *script.Node, _ int) bool {
		if err := errors.ValidateNodeID(n.ID); err != nil {
			bad = err
			return false
		}
		return true
	})
	return bad
}

// LayoutWithCacheInfo computes the diagram with caching and reports
// whether the result came from cache.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, s *script.Script, scriptHash string, opts Options) (*diagram.Diagram, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	src, sourceHash, err := r.loadSource(opts)
	if err != nil {
		return nil, false, err
	}

	keyer := r.Keyer
	if opts.Project != "" {
		keyer = cache.NewScopedKeyer(keyer, "project:"+opts.Project+":")
	}
	key := keyer.LayoutKey(scriptHash, opts.LayoutKeyOpts(sourceHash))

	if opts.cacheable() && !opts.Refresh {
		if d, err := cache.GetDiagram(ctx, r.Cache, key); err == nil {
			return d, true, nil
		}
	}

	eng := layout.Engine{
		Geometry: opts.Geometry,
		Resolver: opts.Resolver,
		Theme:    opts.Theme,
	}
	d := eng.LayoutSource(s, src)

	if opts.cacheable() {
		if err := cache.PutDiagram(ctx, r.Cache, key, d); err != nil {
			opts.Logger.Debug("cache write failed", "err", err)
		}
	}

	return d, false, nil
}

// Layout is a convenience wrapper that discards the cache hit info.
func (r *Runner) Layout(ctx context.Context, s *script.Script, scriptHash string, opts Options) (*diagram.Diagram, error) {
	d, _, err := r.LayoutWithCacheInfo(ctx, s, scriptHash, opts)
	return d, err
}

// loadSource reads the optional source text and returns its context and
// content hash ("" when no source is attached).
func (r *Runner) loadSource(opts Options) (*display.SourceContext, string, error) {
	if opts.SourcePath == "" {
		return nil, "", nil
	}
	data, err := os.ReadFile(opts.SourcePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", errors.Wrap(errors.ErrCodeFileNotFound, err, "source file %s not found", opts.SourcePath)
		}
		return nil, "", errors.Wrap(errors.ErrCodeInternal, err, "cannot read source %s", opts.SourcePath)
	}
	return display.NewSourceContext(string(data)), cache.Hash(data), nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
