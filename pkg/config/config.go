// Package config loads and validates application configuration from a YAML
// file with environment-variable overrides. It provides typed structs for
// every subsystem (Index, Tokenizer, Logging, Metrics).
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/termdex/termdex/internal/index"
	"github.com/termdex/termdex/internal/tokenizer"
	"github.com/termdex/termdex/pkg/errors"
)

// Config is the top-level application configuration.
type Config struct {
	Index     IndexConfig     `yaml:"index"`
	Tokenizer TokenizerConfig `yaml:"tokenizer"`
	Documents []string        `yaml:"documents"`
	Logging   LoggingConfig   `yaml:"logging"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// IndexConfig controls the term table's bucket count.
type IndexConfig struct {
	Capacity int `yaml:"capacity"`
}

// TokenizerConfig holds the delimiter set used to split lines into tokens
// and whether Snowball stemming is applied.
type TokenizerConfig struct {
	Delimiters string `yaml:"delimiters"`
	Stemming   bool   `yaml:"stemming"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls the Prometheus metrics server.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// Load reads a YAML config file (if provided) and applies environment-
// variable overrides. It returns a Config populated with defaults for any
// missing values.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// Validate rejects configurations the process cannot run with.
func (c *Config) Validate() error {
	if c.Index.Capacity < 1 {
		return fmt.Errorf("%w: index capacity must be at least 1, got %d",
			errors.ErrInvalidConfig, c.Index.Capacity)
	}
	if len(c.Documents) == 0 {
		return fmt.Errorf("%w: at least one document path is required",
			errors.ErrInvalidConfig)
	}
	if c.Metrics.Enabled && (c.Metrics.Port < 1 || c.Metrics.Port > 65535) {
		return fmt.Errorf("%w: metrics port %d out of range",
			errors.ErrInvalidConfig, c.Metrics.Port)
	}
	return nil
}

// defaultConfig returns a Config with sensible defaults for local use.
func defaultConfig() *Config {
	return &Config{
		Index: IndexConfig{
			Capacity: index.DefaultCapacity,
		},
		Tokenizer: TokenizerConfig{
			Delimiters: tokenizer.DefaultDelimiters,
			Stemming:   false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Port:    9090,
		},
	}
}

// applyEnvOverrides reads TD_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TD_INDEX_CAPACITY"); v != "" {
		if capacity, err := strconv.Atoi(v); err == nil {
			cfg.Index.Capacity = capacity
		}
	}
	if v := os.Getenv("TD_TOKENIZER_STEMMING"); v != "" {
		if stemming, err := strconv.ParseBool(v); err == nil {
			cfg.Tokenizer.Stemming = stemming
		}
	}
	if v := os.Getenv("TD_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("TD_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("TD_METRICS_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Metrics.Enabled = enabled
		}
	}
	if v := os.Getenv("TD_METRICS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Metrics.Port = port
		}
	}
}
