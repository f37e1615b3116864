package model

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "config.yaml")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Estimator.TimeoutSec != 10 {
		t.Errorf("TimeoutSec = %d, want 10", cfg.Estimator.TimeoutSec)
	}
	if cfg.Estimator.BaseURL != "" {
		t.Errorf("BaseURL = %q, want empty (remote disabled by default)", cfg.Estimator.BaseURL)
	}
	if cfg.Storage.Path == "" {
		t.Error("Storage.Path should default to a non-empty location")
	}
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "estimator:\n  base_url: https://example.test/estimate\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Estimator.BaseURL != "https://example.test/estimate" {
		t.Errorf("BaseURL = %q", cfg.Estimator.BaseURL)
	}
	if cfg.Estimator.TimeoutSec != 10 {
		t.Errorf("TimeoutSec = %d, want default 10", cfg.Estimator.TimeoutSec)
	}
	if cfg.Storage.Path == "" {
		t.Error("Storage.Path should keep its default")
	}
}

func TestSaveLoadConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	want := &AppConfig{
		Storage:   StorageConfig{Path: "/tmp/meals.db"},
		Estimator: EstimatorConfig{BaseURL: "https://example.test", TimeoutSec: 5},
		Display:   DisplayConfig{Theme: "dark"},
	}
	if err := SaveConfig(path, want); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if *got != *want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}
