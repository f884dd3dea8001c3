package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTitle       = "physics-sim"
	DefaultWidth       = 1200
	DefaultHeight      = 800
	DefaultUnitsAcross = 10.0
	DefaultGravityY    = 9.8
)

type Config struct {
	Title        string    `yaml:"title"`
	Width        int       `yaml:"width"`
	Height       int       `yaml:"height"`
	Resizable    bool      `yaml:"resizable"`
	ExitOnEscape bool      `yaml:"exit_on_escape"`
	ShowFPS      bool      `yaml:"show_fps"`
	Debug        bool      `yaml:"debug"`
	UnitsAcross  float64   `yaml:"units_across"`
	Gravity      []float64 `yaml:"gravity"`
	Background   []float64 `yaml:"background"`
	Foreground   []float64 `yaml:"foreground"`
}

func DefaultConfig() *Config {
	return &Config{
		Title:        DefaultTitle,
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		Resizable:    true,
		ExitOnEscape: true,
		UnitsAcross:  DefaultUnitsAcross,
		Gravity:      []float64{0, DefaultGravityY},
		Background:   []float64{0, 0, 0, 1},
		Foreground:   []float64{1, 1, 1, 1},
	}
}

// Load reads a YAML file over DefaultConfig and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over DefaultConfig and validates the result. Keys
// missing from data keep their defaults.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML, replacing any existing file at path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if !finite(c.UnitsAcross) || c.UnitsAcross <= 0 {
		errs = append(errs, fmt.Errorf("units_across %v must be positive and finite", c.UnitsAcross))
	}
	if len(c.Gravity) != 2 {
		errs = append(errs, fmt.Errorf("gravity needs 2 components, got %d", len(c.Gravity)))
	} else {
		for i, v := range c.Gravity {
			if !finite(v) {
				errs = append(errs, fmt.Errorf("gravity component %d is %v, must be finite", i, v))
			}
		}
	}
	errs = append(errs, validateColor("background", c.Background), validateColor("foreground", c.Foreground))
	return errors.Join(errs...)
}

func validateColor(name string, c []float64) error {
	if len(c) != 4 {
		return fmt.Errorf("%s needs 4 components (r, g, b, a), got %d", name, len(c))
	}
	for i, v := range c {
		if !(v >= 0 && v <= 1) {
			return fmt.Errorf("%s component %d is %v, want [0, 1]", name, i, v)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
