package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/termdex/termdex/internal/index"
	apperrors "github.com/termdex/termdex/pkg/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Index.Capacity != index.DefaultCapacity {
		t.Errorf("Capacity = %d, want %d", cfg.Index.Capacity, index.DefaultCapacity)
	}
	if cfg.Tokenizer.Stemming {
		t.Error("stemming enabled by default")
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("logging defaults = %+v", cfg.Logging)
	}
	if cfg.Metrics.Enabled {
		t.Error("metrics enabled by default")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
index:
  capacity: 53
tokenizer:
  stemming: true
documents:
  - a.txt
  - b.txt
logging:
  level: debug
  format: json
metrics:
  enabled: true
  port: 9191
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Index.Capacity != 53 {
		t.Errorf("Capacity = %d, want 53", cfg.Index.Capacity)
	}
	if !cfg.Tokenizer.Stemming {
		t.Error("stemming not enabled")
	}
	if len(cfg.Documents) != 2 || cfg.Documents[0] != "a.txt" {
		t.Errorf("Documents = %v", cfg.Documents)
	}
	if cfg.Metrics.Port != 9191 {
		t.Errorf("metrics port = %d, want 9191", cfg.Metrics.Port)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load on missing file succeeded")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TD_INDEX_CAPACITY", "31")
	t.Setenv("TD_LOGGING_LEVEL", "debug")
	t.Setenv("TD_METRICS_ENABLED", "true")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Index.Capacity != 31 {
		t.Errorf("Capacity = %d, want 31", cfg.Index.Capacity)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
	if !cfg.Metrics.Enabled {
		t.Error("metrics not enabled by env override")
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := defaultConfig()
		cfg.Documents = []string{"a.txt"}
		return cfg
	}

	if err := base().Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	cfg := base()
	cfg.Index.Capacity = 0
	if err := cfg.Validate(); !errors.Is(err, apperrors.ErrInvalidConfig) {
		t.Errorf("zero capacity: err = %v, want ErrInvalidConfig", err)
	}

	cfg = base()
	cfg.Documents = nil
	if err := cfg.Validate(); !errors.Is(err, apperrors.ErrInvalidConfig) {
		t.Errorf("no documents: err = %v, want ErrInvalidConfig", err)
	}

	cfg = base()
	cfg.Metrics.Enabled = true
	cfg.Metrics.Port = 70000
	if err := cfg.Validate(); !errors.Is(err, apperrors.ErrInvalidConfig) {
		t.Errorf("bad port: err = %v, want ErrInvalidConfig", err)
	}
}
