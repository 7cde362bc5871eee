// Package config loads the tool configuration (TOML) and batch target
// files (YAML).
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config is the tool configuration. Every field has a usable default; a
// config file only overrides.
type Config struct {
	Output OutputConfig `toml:"output"`
	HTTP   HTTPConfig   `toml:"http"`
	Faults FaultsConfig `toml:"faults"`
	Log    LogConfig    `toml:"log"`
}

// OutputConfig controls where and how reports are written.
type OutputConfig struct {
	// Directory receives report files when a target names no explicit
	// output path. Default: current directory.
	Directory string `toml:"directory"`
	// Format is html, text, or json. Default: html.
	Format string `toml:"format"`
}

// HTTPConfig controls the management client transport.
type HTTPConfig struct {
	// TimeoutSeconds bounds each XML API exchange. Default: 60.
	TimeoutSeconds int `toml:"timeout_seconds"`
	// InsecureSkipVerify accepts self-signed controller certificates.
	InsecureSkipVerify bool `toml:"insecure_skip_verify"`
}

// FaultsConfig supplies the fault severity ordering used to sort the fault
// table, most urgent first.
type FaultsConfig struct {
	SeverityOrder []string `toml:"severity_order"`
}

// LogConfig controls logging.
type LogConfig struct {
	// File receives a copy of the log alongside the console. Empty
	// disables the log file.
	File string `toml:"file"`
	// Level is debug, info, warn, or error. Default: info.
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{Directory: ".", Format: "html"},
		HTTP:   HTTPConfig{TimeoutSeconds: 60},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads a TOML config file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = "."
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "html"
	}
	if cfg.HTTP.TimeoutSeconds <= 0 {
		cfg.HTTP.TimeoutSeconds = 60
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	return cfg, nil
}

// Timeout returns the HTTP timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}
