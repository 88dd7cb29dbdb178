// Package config provides configuration management for clipstamp.
// Configuration is loaded from an optional YAML file and environment
// variables, with sensible defaults. Environment variables win.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// Default values
	DefaultLogLevel = "info"
	DefaultExifTool = "exiftool"

	// Environment variable names
	EnvLogLevel   = "CLIPSTAMP_LOG_LEVEL"
	EnvExifTool   = "CLIPSTAMP_EXIFTOOL"
	EnvConfigFile = "CLIPSTAMP_CONFIG"

	// Config filename looked up in the home directory when
	// CLIPSTAMP_CONFIG is not set.
	DefaultConfigName = ".clipstamp.yaml"
)

// fileConfig is the YAML shape of the optional config file.
type fileConfig struct {
	LogLevel string   `yaml:"log_level"`
	ExifTool string   `yaml:"exiftool"`
	Fields   []string `yaml:"fields"`
}

// Config holds the resolved application configuration.
type Config struct {
	logLevel string
	exifTool string
	fields   []string
}

// New creates a Config with defaults, then applies the YAML config file
// (if any) and environment variable overrides, in that order.
func New() (*Config, error) {
	// A .env next to the binary is convenient for editors; ignore absence.
	_ = godotenv.Load()

	cfg := &Config{
		logLevel: DefaultLogLevel,
		exifTool: DefaultExifTool,
	}

	path := os.Getenv(EnvConfigFile)
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			candidate := filepath.Join(home, DefaultConfigName)
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
			}
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
		}
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("cannot parse config file %s: %w", path, err)
		}
		if fc.LogLevel != "" {
			cfg.logLevel = fc.LogLevel
		}
		if fc.ExifTool != "" {
			cfg.exifTool = fc.ExifTool
		}
		if len(fc.Fields) > 0 {
			cfg.fields = fc.Fields
		}
	}

	// Override from environment
	if ll := os.Getenv(EnvLogLevel); ll != "" {
		cfg.logLevel = ll
	}
	if et := os.Getenv(EnvExifTool); et != "" {
		cfg.exifTool = et
	}

	return cfg, nil
}

// LogLevel returns the log level (debug, info, warn, error)
func (c *Config) LogLevel() string {
	return c.logLevel
}

// ExifTool returns the exiftool binary name or path to resolve.
func (c *Config) ExifTool() string {
	return c.exifTool
}

// Fields returns the metadata field priority override, or nil to use
// the built-in order.
func (c *Config) Fields() []string {
	return c.fields
}

// Version information (set at build time via ldflags)
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)
