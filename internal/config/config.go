// Package config loads application configuration from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/xavierbriand/dolmenwood-sub001/internal/errors"
)

// Config carries every tunable the binary reads from its environment.
// Flags may override individual fields after loading.
type Config struct {
	// DataDir is the directory of YAML table and creature definitions.
	// Tables are read from DataDir/tables, creatures from
	// DataDir/creatures.
	DataDir string `env:"DOLMENWOOD_DATA_DIR" envDefault:"data"`

	// RedisAddr switches the data source from flat files to Redis when
	// set, and enables session history.
	RedisAddr string `env:"DOLMENWOOD_REDIS_ADDR"`

	// HistoryTTL bounds how long a session's encounter log survives.
	HistoryTTL time.Duration `env:"DOLMENWOOD_HISTORY_TTL" envDefault:"4h"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"DOLMENWOOD_LOG_LEVEL" envDefault:"info"`
}

// TablesDir returns the table definition directory.
func (c *Config) TablesDir() string {
	return c.DataDir + "/tables"
}

// CreaturesDir returns the creature definition directory.
func (c *Config) CreaturesDir() string {
	return c.DataDir + "/creatures"
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("DOLMENWOOD_LOG_LEVEL", cfg.LogLevel,
		[]string{"debug", "info", "warn", "error"}, vb)
	if cfg.HistoryTTL <= 0 {
		vb.InvalidField("DOLMENWOOD_HISTORY_TTL", "must be positive")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return cfg, nil
}
