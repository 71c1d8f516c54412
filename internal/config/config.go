// Package config provides configuration management for questplus.
//
// The config file holds tool settings only; experiments are separate files
// passed on the command line.
//
// Config file locations (priority order):
//  1. $QUESTPLUS_CONFIG
//  2. ./questplus.yaml
//  3. $XDG_CONFIG_HOME/questplus/config.yaml
//  4. ~/.config/questplus/config.yaml
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		// No config found - return defaults
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns sensible defaults for a new installation
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		Output:   OutputText,
		LogLevel: LogLevelWarn,
	}
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	c.Output = ParseOutput(string(c.Output))
	c.LogLevel = ParseLogLevel(string(c.LogLevel))
}

// Deterministic returns true if a fixed seed is configured
func (c *Config) Deterministic() bool {
	return c.Seed != nil
}

// Summary returns a human-readable config summary
func (c *Config) Summary() string {
	seed := "random"
	if c.Seed != nil {
		seed = fmt.Sprintf("%d", *c.Seed)
	}
	return fmt.Sprintf("Output: %s, Log level: %s, Seed: %s, Check unpacking: %v",
		c.Output, c.LogLevel, seed, c.CheckUnpacking)
}
