// Package pipeline provides the core load → layout pipeline for Sceneflow.
//
// This package implements the complete script-to-diagram flow used by the
// CLI. By centralizing this logic, every entry point gets the same
// validation, caching, and statistics behavior.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Load: Read and validate the script tree (JSON)
//  2. Layout: Compute the positioned diagram, with result caching
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    ScriptPath: "chapter1.json",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d := result.Diagram
package pipeline

import (
	"encoding/json"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sceneflow/sceneflow/pkg/cache"
	"github.com/sceneflow/sceneflow/pkg/diagram"
	"github.com/sceneflow/sceneflow/pkg/display"
	"github.com/sceneflow/sceneflow/pkg/errors"
	"github.com/sceneflow/sceneflow/pkg/script"
)

// Options contains all configuration for the layout pipeline.
// This struct supports JSON serialization for recording runs.
type Options struct {
	// Input options. Exactly one of ScriptPath or ScriptData must be set.
	ScriptPath string `json:"script_path,omitempty"`
	ScriptData []byte `json:"-"` // in-memory script JSON

	// SourcePath optionally points at the original script text; node
	// summaries are derived from it when present.
	SourcePath string `json:"source_path,omitempty"`

	// Project namespaces cache keys; see cache.NewScopedKeyer.
	Project string `json:"project,omitempty"`

	// Refresh skips the cache lookup and overwrites the stored entry.
	Refresh bool `json:"refresh,omitempty"`

	// Layout options. Zero values mean defaults.
	Geometry diagram.Geometry `json:"geometry,omitempty"`
	Theme    display.Theme    `json:"-"`

	// Resolver overrides the presentation metadata derivation. Runs with
	// a custom resolver bypass the cache: the key scheme cannot see what
	// an arbitrary resolver would produce.
	Resolver display.Resolver `json:"-"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this execution, for log correlation.
	RunID string

	// Script is the loaded script tree.
	Script *script.Script

	// ScriptHash is the content hash of the raw script bytes.
	ScriptHash string

	// Diagram is the positioned layout.
	Diagram *diagram.Diagram

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks whether the layout came from cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	BlockCount  int
	NodeCount   int // diagram nodes, terminals included
	EdgeCount   int
	Diagnostics int
	LoadTime    time.Duration
	LayoutTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout result came from cache
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same
// effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.ScriptPath == "" && o.ScriptData == nil {
		return errors.New(errors.ErrCodeInvalidInput, "script path or script data is required")
	}
	if o.ScriptPath != "" && o.ScriptData != nil {
		return errors.New(errors.ErrCodeInvalidInput, "script path and script data are mutually exclusive")
	}
	if o.ScriptPath != "" {
		if err := errors.ValidatePath(o.ScriptPath); err != nil {
			return err
		}
	}
	if o.SourcePath != "" {
		if err := errors.ValidatePath(o.SourcePath); err != nil {
			return err
		}
	}

	if o.Geometry.IsZero() {
		o.Geometry = diagram.DefaultGeometry()
	}
	if o.Theme.IsZero() {
		o.Theme = display.DefaultTheme()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// LayoutKeyOpts returns the cache key options for this run.
// The theme participates as a fingerprint so recolored runs never reuse
// entries produced under different colors; sourceHash covers the
// attached source text the same way.
func (o *Options) LayoutKeyOpts(sourceHash string) cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Geometry: o.Geometry,
		Theme:    o.themeFingerprint(),
		Source:   sourceHash,
	}
}

// themeFingerprint returns "" for the default theme, otherwise a hash of
// the theme's mappings. Map serialization is key-sorted, so equal themes
// always fingerprint identically.
func (o *Options) themeFingerprint() string {
	def := display.DefaultTheme()
	if equalThemes(o.Theme, def) {
		return ""
	}
	data, err := json.Marshal(struct {
		Accents map[string]string            `json:"accents"`
		Edges   map[diagram.EdgeLabel]string `json:"edges"`
	}{o.Theme.Accents, o.Theme.Edges})
	if err != nil {
		return "unfingerprintable"
	}
	return cache.Hash(data)
}

func equalThemes(a, b display.Theme) bool {
	if len(a.Accents) != len(b.Accents) || len(a.Edges) != len(b.Edges) {
		return false
	}
	for k, v := range a.Accents {
		if b.Accents[k] != v {
			return false
		}
	}
	for k, v := range a.Edges {
		if b.Edges[k] != v {
			return false
		}
	}
	return true
}

// cacheable reports whether this run's output may be stored and reused.
func (o *Options) cacheable() bool {
	return o.Resolver == nil
}
