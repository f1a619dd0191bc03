// Package config loads the cosmos CLI configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when no path is given.
const DefaultPath = "cosmos.yaml"

// Environment overrides.
const (
	EnvDatabase = "COSMOS_DB"
	EnvLogLevel = "COSMOS_LOG_LEVEL"
)

const defaultDatabasePath = "cosmos.db"

// Config is the cosmos.yaml document.
type Config struct {
	// DatabasePath is the SQLite worksheet database.
	DatabasePath string `yaml:"database_path"`
	// RulesPath is an optional YAML file of extra implication rules.
	RulesPath string `yaml:"rules_path,omitempty"`
	// MappingsPath is an optional YAML file of importer rule overrides.
	MappingsPath string  `yaml:"mappings_path,omitempty"`
	Logging      Logging `yaml:"logging"`
}

// Logging configures the zap logger.
type Logging struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development,omitempty"`
}

// Load reads the config at path. A missing file yields the defaults;
// environment overrides are applied last.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		data = nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	cfg.applyEnv(os.Getenv)

	return cfg, nil
}

// Parse parses YAML config bytes and applies defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()

	if _, err := zapcore.ParseLevel(cfg.Logging.Level); err != nil {
		return nil, fmt.Errorf("invalid logging.level: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.DatabasePath == "" {
		c.DatabasePath = defaultDatabasePath
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	c.Logging.Level = strings.ToLower(c.Logging.Level)
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv(EnvDatabase); v != "" {
		c.DatabasePath = v
	}

	if v := getenv(EnvLogLevel); v != "" {
		if _, err := zapcore.ParseLevel(v); err == nil {
			c.Logging.Level = strings.ToLower(v)
		}
	}
}

// ZapConfig returns the zap configuration described by Logging. verbose
// forces debug level.
func (l Logging) ZapConfig(verbose bool) zap.Config {
	zc := zap.NewProductionConfig()
	if l.Development {
		zc = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	if verbose {
		level = zapcore.DebugLevel
	}

	zc.Level = zap.NewAtomicLevelAt(level)

	return zc
}
