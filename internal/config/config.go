// Package config provides theme configuration management for adorn.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/adorn/pkg/sgr"
)

// Config holds the adorn theme configuration. Style values are flag specs
// like "bold+red", resolved against the default flag table.
type Config struct {
	// Positional styles are consumed by phrases in order of appearance when
	// no --style flags are given.
	Positional []string `yaml:"positional,omitempty"`

	// Always maps literal phrase text to a style applied whenever that text
	// appears.
	Always map[string]string `yaml:"always,omitempty"`

	NoColor bool `yaml:"no_color,omitempty"`
}

// Validate checks that every style spec resolves against the flag table.
func (c *Config) Validate() error {
	table := sgr.Default()
	for _, spec := range c.Positional {
		if _, err := table.ParseSpec(spec); err != nil {
			return fmt.Errorf("positional style: %w", err)
		}
	}
	for text, spec := range c.Always {
		if _, err := table.ParseSpec(spec); err != nil {
			return fmt.Errorf("always style for %q: %w", text, err)
		}
	}
	return nil
}

// Styles resolves the configured specs into flag combinations: the
// positional list in order, and the always mapping keyed by phrase text.
func (c *Config) Styles() ([]uint64, map[string]uint64, error) {
	table := sgr.Default()

	var positional []uint64
	for _, spec := range c.Positional {
		combination, err := table.ParseSpec(spec)
		if err != nil {
			return nil, nil, fmt.Errorf("positional style: %w", err)
		}
		positional = append(positional, combination)
	}

	always := make(map[string]uint64, len(c.Always))
	for text, spec := range c.Always {
		combination, err := table.ParseSpec(spec)
		if err != nil {
			return nil, nil, fmt.Errorf("always style for %q: %w", text, err)
		}
		always[text] = combination
	}
	return positional, always, nil
}

// LoadFromEnv overrides configuration from environment variables.
func (c *Config) LoadFromEnv() {
	switch os.Getenv("ADORN_NO_COLOR") {
	case "1", "true", "yes":
		c.NoColor = true
	}
	// The NO_COLOR convention (no-color.org) is honored too.
	if os.Getenv("NO_COLOR") != "" {
		c.NoColor = true
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "adorn", "config.yml")
	}

	// Fall back to ~/.config/adorn/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".adorn", "config.yml")
	}

	return filepath.Join(home, ".config", "adorn", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment
// variables. A missing file yields an empty config rather than an error.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
