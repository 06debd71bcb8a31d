// Package config loads optional TOML configuration for the CLI.
//
// Configuration is entirely optional: every setting has a default, a
// missing file is not an error, and flags override file values. A
// typical sceneflow.toml:
//
//	project = "demo"
//
//	[layout]
//	node_width = 260
//	branch_gap = 100
//
//	[theme.accents]
//	Label = "#1971C2"
//
//	[cache]
//	disabled = true
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/sceneflow/sceneflow/pkg/diagram"
	"github.com/sceneflow/sceneflow/pkg/display"
	"github.com/sceneflow/sceneflow/pkg/errors"
)

// DefaultFilename is looked up in the working directory when no explicit
// config path is given.
const DefaultFilename = "sceneflow.toml"

// Config is the full file schema. Zero values mean "use the default".
type Config struct {
	// Project namespaces cache entries when several projects share one
	// cache directory.
	Project string `toml:"project"`

	Layout LayoutConfig `toml:"layout"`
	Theme  ThemeConfig  `toml:"theme"`
	Cache  CacheConfig  `toml:"cache"`
}

// LayoutConfig overrides individual spacing constants.
type LayoutConfig struct {
	NodeWidth     float64 `toml:"node_width"`
	NodeHeight    float64 `toml:"node_height"`
	VerticalGap   float64 `toml:"vertical_gap"`
	HorizontalGap float64 `toml:"horizontal_gap"`
	BranchGap     float64 `toml:"branch_gap"`
	OptionGap     float64 `toml:"option_gap"`
}

// ThemeConfig overrides individual accent colors and edge styles.
// Accent keys are node types ("Label", "Action", ...); edge keys are
// branch labels ("True", "False") or "" for plain edges.
type ThemeConfig struct {
	Accents map[string]string `toml:"accents"`
	Edges   map[string]string `toml:"edges"`
}

// CacheConfig controls layout result caching.
type CacheConfig struct {
	Dir      string `toml:"dir"`
	Disabled bool   `toml:"disabled"`
}

// Load reads and validates a config file.
// An explicitly named file must exist; use LoadDefault for the optional
// working-directory lookup.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot parse config %s", path)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadDefault loads DefaultFilename from the working directory when it
// exists. The second return reports whether a file was found; a missing
// file yields the zero Config with no error.
func LoadDefault() (Config, bool, error) {
	if _, err := os.Stat(DefaultFilename); err != nil {
		return Config{}, false, nil
	}
	cfg, err := Load(DefaultFilename)
	return cfg, err == nil, err
}

func (c Config) validate() error {
	for name, v := range map[string]float64{
		"node_width":     c.Layout.NodeWidth,
		"node_height":    c.Layout.NodeHeight,
		"vertical_gap":   c.Layout.VerticalGap,
		"horizontal_gap": c.Layout.HorizontalGap,
		"branch_gap":     c.Layout.BranchGap,
		"option_gap":     c.Layout.OptionGap,
	} {
		if v < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "layout.%s cannot be negative", name)
		}
	}
	return nil
}

// Geometry overlays the config's layout overrides on the default
// spacing constants.
func (c Config) Geometry() diagram.Geometry {
	g := diagram.DefaultGeometry()
	if c.Layout.NodeWidth > 0 {
		g.NodeWidth = c.Layout.NodeWidth
	}
	if c.Layout.NodeHeight > 0 {
		g.NodeHeight = c.Layout.NodeHeight
	}
	if c.Layout.VerticalGap > 0 {
		g.VerticalGap = c.Layout.VerticalGap
	}
	if c.Layout.HorizontalGap > 0 {
		g.HorizontalGap = c.Layout.HorizontalGap
	}
	if c.Layout.BranchGap > 0 {
		g.BranchGap = c.Layout.BranchGap
	}
	if c.Layout.OptionGap > 0 {
		g.OptionGap = c.Layout.OptionGap
	}
	return g
}

// DisplayTheme overlays the config's color overrides on the default
// theme.
func (c Config) DisplayTheme() display.Theme {
	t := display.DefaultTheme()
	for k, v := range c.Theme.Accents {
		t.Accents[k] = v
	}
	for k, v := range c.Theme.Edges {
		t.Edges[diagram.EdgeLabel(k)] = v
	}
	return t
}

// HasThemeOverrides reports whether the config changes any colors.
// Used to decide whether cache keys need a theme fingerprint.
func (c Config) HasThemeOverrides() bool {
	return len(c.Theme.Accents) > 0 || len(c.Theme.Edges) > 0
}
