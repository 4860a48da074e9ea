package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bench.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config failed validation: %v", err)
	}
	if cfg.Resolution != 1.0 {
		t.Errorf("Expected resolution 1.0, got %v", cfg.Resolution)
	}
	if len(cfg.Backends) != 0 {
		t.Errorf("Expected empty backend selection (all), got %v", cfg.Backends)
	}
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
data_dir: /srv/snap
backends: [gonum, storage]
resolution: 0.8
seed: 42
min_quality_gain: 1e-6
max_levels: 10
metrics: false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != "/srv/snap" {
		t.Errorf("Expected data_dir /srv/snap, got %q", cfg.DataDir)
	}
	if len(cfg.Backends) != 2 || cfg.Backends[0] != "gonum" || cfg.Backends[1] != "storage" {
		t.Errorf("Unexpected backends: %v", cfg.Backends)
	}
	if cfg.Resolution != 0.8 {
		t.Errorf("Expected resolution 0.8, got %v", cfg.Resolution)
	}
	if cfg.Seed != 42 {
		t.Errorf("Expected seed 42, got %v", cfg.Seed)
	}
	if cfg.MaxLevels != 10 {
		t.Errorf("Expected max_levels 10, got %v", cfg.MaxLevels)
	}
	if cfg.Metrics {
		t.Error("Expected metrics disabled")
	}
}

func TestLoadPartialConfigFillsDefaults(t *testing.T) {
	path := writeConfig(t, "data_dir: ./graphs\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := Default()
	if cfg.Resolution != want.Resolution {
		t.Errorf("Expected default resolution %v, got %v", want.Resolution, cfg.Resolution)
	}
	if cfg.MinQualityGain != want.MinQualityGain {
		t.Errorf("Expected default min_quality_gain %v, got %v", want.MinQualityGain, cfg.MinQualityGain)
	}
	if cfg.MaxLevels != want.MaxLevels {
		t.Errorf("Expected default max_levels %v, got %v", want.MaxLevels, cfg.MaxLevels)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, ErrConfigMissing) {
		t.Fatalf("Expected ErrConfigMissing, got %v", err)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "data_dir: [unterminated\n")
	if _, err := Load(path); err == nil {
		t.Fatal("Expected parse error for malformed YAML")
	}
}

func TestValidateRejectsUnknownBackend(t *testing.T) {
	path := writeConfig(t, "backends: [gonum, networkx]\n")
	_, err := Load(path)
	if err == nil {
		t.Fatal("Expected validation error for unknown backend")
	}
}

func TestValidateRejectsNegativeResolution(t *testing.T) {
	cfg := Default()
	cfg.Resolution = -0.5
	if err := cfg.Validate(); err == nil {
		t.Fatal("Expected validation error for negative resolution")
	}
}
