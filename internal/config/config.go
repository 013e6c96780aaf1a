// Package config handles typegen.toml project configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/skdltmxn/typegen-go/typegen"
)

// FileName is the name of the project configuration file.
const FileName = "typegen.toml"

// Environment variables overriding the configuration file.
const (
	EnvOutputDir = "TYPEGEN_OUTPUT_DIR"
	EnvFormat    = "TYPEGEN_FORMAT"
)

// Config represents a typegen.toml project configuration.
type Config struct {
	Spec    Spec    `toml:"spec"`
	Output  Output  `toml:"output"`
	Resolve Resolve `toml:"resolve"`

	// Dir is the directory containing the typegen.toml file (set at load time).
	Dir string `toml:"-"`
}

// Spec configures specification file locations.
type Spec struct {
	Files []string `toml:"files"`
}

// Output configures catalog output.
type Output struct {
	Dir    string `toml:"dir"`
	Format string `toml:"format"`
}

// Resolve configures type resolution.
type Resolve struct {
	Modules       []string `toml:"modules"`
	LocalModules  []string `toml:"local-modules"`
	ListWrappers  []string `toml:"list-wrappers"`
	ListModule    string   `toml:"list-module"`
	ListName      string   `toml:"list-name"`
	DefaultModule string   `toml:"default-module"`
	MaxDepth      int      `toml:"max-depth"`
}

// Default returns the configuration used when no typegen.toml exists.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	c.applyEnv()
	return c
}

// Load parses a typegen.toml file from the given directory.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	c.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	c.applyDefaults()
	c.applyEnv()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return &c, nil
}

// FindAndLoad walks up from startDir to find a typegen.toml file,
// then loads and returns the configuration. Returns nil if none is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

func (c *Config) applyDefaults() {
	if c.Output.Dir == "" {
		c.Output.Dir = "types"
	}
	if c.Output.Format == "" {
		c.Output.Format = "json"
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.Output.Dir = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		c.Output.Format = v
	}
}

// Validate checks the values that cannot be defaulted.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "json", "yaml", "text":
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	if c.Resolve.MaxDepth < 0 {
		return fmt.Errorf("max-depth must not be negative: %d", c.Resolve.MaxDepth)
	}
	return nil
}

// SpecPatterns returns the spec file patterns relative to the config directory.
func (c *Config) SpecPatterns() []string {
	patterns := make([]string, 0, len(c.Spec.Files))
	for _, f := range c.Spec.Files {
		patterns = append(patterns, c.path(f))
	}
	return patterns
}

// OutputDir returns the output directory relative to the config directory.
func (c *Config) OutputDir() string {
	return c.path(c.Output.Dir)
}

func (c *Config) path(p string) string {
	if c.Dir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Dir, p)
}

// Options converts the resolve section to resolver options. Unset values
// keep the resolver defaults.
func (c *Config) Options() typegen.Options {
	return typegen.Options{
		ListWrappers:  c.Resolve.ListWrappers,
		ListModule:    c.Resolve.ListModule,
		ListName:      c.Resolve.ListName,
		DefaultModule: c.Resolve.DefaultModule,
		LocalModules:  c.Resolve.LocalModules,
		MaxDepth:      c.Resolve.MaxDepth,
	}
}
