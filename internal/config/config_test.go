package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Title != "physics-sim" {
		t.Errorf("expected title physics-sim, got %s", cfg.Title)
	}
	if cfg.Width != 1200 || cfg.Height != 800 {
		t.Errorf("expected 1200x800, got %dx%d", cfg.Width, cfg.Height)
	}
	if !cfg.Resizable || !cfg.ExitOnEscape {
		t.Error("window should be resizable and exit on escape")
	}
	if cfg.UnitsAcross != 10 {
		t.Errorf("expected units_across 10, got %v", cfg.UnitsAcross)
	}
	if len(cfg.Gravity) != 2 || cfg.Gravity[1] != 9.8 {
		t.Errorf("expected gravity [0 9.8], got %v", cfg.Gravity)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("width: 640\ngravity: [1, 2]\nforeground: [1, 0, 0, 1]\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cfg.Width != 640 {
		t.Errorf("expected width 640, got %d", cfg.Width)
	}
	if cfg.Height != DefaultHeight {
		t.Errorf("expected default height, got %d", cfg.Height)
	}
	if cfg.Gravity[0] != 1 || cfg.Gravity[1] != 2 {
		t.Errorf("expected gravity [1 2], got %v", cfg.Gravity)
	}
	if cfg.Foreground[0] != 1 || cfg.Foreground[1] != 0 {
		t.Errorf("expected red foreground, got %v", cfg.Foreground)
	}
	if !cfg.ExitOnEscape {
		t.Error("exit_on_escape should keep its default")
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad yaml", "width: [", "yaml"},
		{"zero width", "width: 0", "window size"},
		{"negative height", "height: -5", "window size"},
		{"zero units", "units_across: 0", "units_across"},
		{"infinite units", "units_across: .inf", "units_across"},
		{"nan units", "units_across: .nan", "units_across"},
		{"nan gravity", "gravity: [.nan, 9.8]", "gravity component 0"},
		{"infinite gravity", "gravity: [0, .inf]", "gravity component 1"},
		{"negative infinite gravity", "gravity: [-.inf, 0]", "gravity component 0"},
		{"nan color", "background: [0, .nan, 0, 1]", "background component 1"},
		{"short gravity", "gravity: [1]", "gravity"},
		{"short color", "background: [0, 0, 0]", "background"},
		{"color out of range", "foreground: [1, 1, 2, 1]", "foreground component 2"},
	}

	for _, tt := range tests {
		_, err := Parse([]byte(tt.yaml))
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error %q should mention %q", tt.name, err, tt.want)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fallsim.yaml")

	cfg := DefaultConfig()
	cfg.Title = "custom"
	cfg.ShowFPS = true
	cfg.UnitsAcross = 20
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Title != "custom" || !loaded.ShowFPS || loaded.UnitsAcross != 20 {
		t.Errorf("loaded config mismatch: %+v", loaded)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
