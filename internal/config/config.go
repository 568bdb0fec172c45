// Package config loads and validates sgstyle.toml.
//
// The file has three layers: global knobs, per-category overrides and
// per-rule overrides. Loading only validates what TOML can see (syntax,
// unknown top-level keys, value ranges); rule ids, category names, severity
// strings and param keys are validated later by rule.Load, which knows the
// built-in rule metadata.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the canonical configuration file name.
const FileName = "sgstyle.toml"

// Defaults for the global knobs.
const (
	DefaultMaxFixIterations = 10
	DefaultLineLength       = 100
	DefaultIndentWidth      = 4
)

// CategoryConfig overrides every rule of one category. Nil fields mean
// "keep the default". Per-rule overrides win over category overrides.
type CategoryConfig struct {
	Enabled  *bool   `toml:"enabled"`
	Severity *string `toml:"severity"`
}

// RuleConfig overrides a single rule.
type RuleConfig struct {
	Enabled  *bool          `toml:"enabled"`
	Severity *string        `toml:"severity"`
	Params   map[string]any `toml:"params"`
}

// Config is the decoded sgstyle.toml.
type Config struct {
	MaxFixIterations int `toml:"max_fix_iterations"`
	LineLength       int `toml:"line_length"`
	IndentWidth      int `toml:"indent_width"`

	Categories map[string]CategoryConfig `toml:"categories"`
	Rules      map[string]RuleConfig     `toml:"rules"`

	// Path is the file the config was loaded from, empty for defaults.
	Path string `toml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		MaxFixIterations: DefaultMaxFixIterations,
		LineLength:       DefaultLineLength,
		IndentWidth:      DefaultIndentWidth,
	}
}

// Load decodes the file at path on top of the defaults. Unknown keys and
// out-of-range globals are fatal.
func Load(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, Errorf(path, "failed to parse TOML: %v", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, Errorf(path, "unknown key %q", undecoded[0].String())
	}
	cfg.Path = path
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Find walks up from startDir to locate sgstyle.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover loads an explicit config path, or searches upward from startDir
// when path is empty. No file found means defaults.
func Discover(path, startDir string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	found, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(found)
}

func (c *Config) validate() error {
	if c.MaxFixIterations < 1 {
		return Errorf(c.Path, "max_fix_iterations must be at least 1, got %d", c.MaxFixIterations)
	}
	if c.LineLength < 1 {
		return Errorf(c.Path, "line_length must be positive, got %d", c.LineLength)
	}
	if c.IndentWidth < 1 {
		return Errorf(c.Path, "indent_width must be positive, got %d", c.IndentWidth)
	}
	return nil
}
