package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sceneflow/sceneflow/pkg/diagram"
	"github.com/sceneflow/sceneflow/pkg/errors"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("chdir back: %v", err)
		}
	})
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sceneflow.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
project = "demo"

[layout]
node_width = 300
branch_gap = 120

[theme.accents]
Label = "#1971C2"

[theme.edges]
True = "#0CA678"

[cache]
disabled = true
dir = "/tmp/sceneflow-cache"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Project != "demo" {
		t.Errorf("Project = %q", cfg.Project)
	}
	if !cfg.Cache.Disabled {
		t.Error("Cache.Disabled should be true")
	}
	if cfg.Cache.Dir != "/tmp/sceneflow-cache" {
		t.Errorf("Cache.Dir = %q", cfg.Cache.Dir)
	}

	g := cfg.Geometry()
	if g.NodeWidth != 300 {
		t.Errorf("NodeWidth = %v, want override 300", g.NodeWidth)
	}
	if g.BranchGap != 120 {
		t.Errorf("BranchGap = %v, want override 120", g.BranchGap)
	}
	// Untouched fields keep their defaults.
	if g.NodeHeight != diagram.DefaultNodeHeight {
		t.Errorf("NodeHeight = %v, want default", g.NodeHeight)
	}

	th := cfg.DisplayTheme()
	if th.Accents["Label"] != "#1971C2" {
		t.Errorf("Label accent = %q", th.Accents["Label"])
	}
	if th.Accents["Action"] == "" {
		t.Error("default accents should survive overrides")
	}
	if th.Edges[diagram.LabelTrue] != "#0CA678" {
		t.Errorf("True edge = %q", th.Edges[diagram.LabelTrue])
	}
	if !cfg.HasThemeOverrides() {
		t.Error("HasThemeOverrides should be true")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := writeConfig(t, "[layout\nnode_width = oops")
	_, err := Load(path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want INVALID_CONFIG", err)
	}
}

func TestLoadNegativeGeometry(t *testing.T) {
	path := writeConfig(t, "[layout]\nnode_width = -10.0\n")
	_, err := Load(path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want INVALID_CONFIG", err)
	}
}

func TestZeroConfigDefaults(t *testing.T) {
	var cfg Config

	if cfg.Geometry() != diagram.DefaultGeometry() {
		t.Error("zero config should yield default geometry")
	}
	th := cfg.DisplayTheme()
	if th.IsZero() {
		t.Error("zero config should yield the default theme")
	}
	if cfg.HasThemeOverrides() {
		t.Error("zero config has no theme overrides")
	}
}

func TestLoadDefaultMissing(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, found, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	if found {
		t.Error("found should be false without a config file")
	}
	if cfg.Project != "" {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestLoadDefaultPresent(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, DefaultFilename), []byte(`project = "here"`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	chdir(t, dir)

	cfg, found, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	if !found {
		t.Fatal("found should be true")
	}
	if cfg.Project != "here" {
		t.Errorf("Project = %q", cfg.Project)
	}
}
