// Package config loads and validates the optional .orca YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values for display configuration.
const (
	DefaultWindow   = 3
	DefaultInterval = 200 * time.Millisecond
)

// Config holds the parsed .orca configuration.
// All fields are optional; zero values represent defaults.
type Config struct {
	Version     int      `yaml:"version"`
	Scripts     []string `yaml:"scripts"`     // ordered list of scripts to supervise
	RawWindow   int      `yaml:"window"`      // output lines retained before truncation
	RawInterval string   `yaml:"interval"`    // redraw interval, e.g. "200ms"
	Interpreter []string `yaml:"interpreter"` // argv prefix, e.g. [python3, -u]
}

// WindowSize returns the configured retention window or the default.
func (c *Config) WindowSize() int {
	if c.RawWindow > 0 {
		return c.RawWindow
	}
	return DefaultWindow
}

// RenderInterval returns the configured redraw interval or the default.
func (c *Config) RenderInterval() time.Duration {
	if c.RawInterval != "" {
		d, err := time.ParseDuration(c.RawInterval)
		if err == nil && d > 0 {
			return d
		}
	}
	return DefaultInterval
}

// LoadResult pairs the parsed config with the directory it came from.
type LoadResult struct {
	Config *Config
	Root   string
}

// Load finds and parses the .orca file, walking upward from dir. When
// no file exists anywhere above dir, a default config rooted at dir is
// returned with no error.
func Load(dir string) (*LoadResult, error) {
	root, err := findRoot(dir)
	if err != nil {
		// No .orca found; run with defaults from dir.
		abs, absErr := filepath.Abs(dir)
		if absErr != nil {
			return nil, absErr
		}
		return &LoadResult{Config: &Config{}, Root: abs}, nil
	}

	data, err := os.ReadFile(filepath.Join(root, ".orca"))
	if err != nil {
		return nil, fmt.Errorf("reading .orca: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing .orca: %w", err)
	}
	return &LoadResult{Config: cfg, Root: root}, nil
}

// findRoot walks upward from dir looking for a directory containing .orca.
func findRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ".orca")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf(".orca not found")
		}
		dir = parent
	}
}
