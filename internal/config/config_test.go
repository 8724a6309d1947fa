package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Law != "ricker" {
		t.Errorf("expected law ricker, got %s", cfg.Law)
	}
	if cfg.N0 <= 0 {
		t.Error("n0 should be positive")
	}
	if cfg.Steps < 1 {
		t.Error("steps should be at least 1")
	}
	if cfg.Params.K <= 0 {
		t.Error("default K should be positive")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workshop.yaml")

	cfg := DefaultConfig()
	cfg.Law = "logistic"
	cfg.Params.R = 2.9
	cfg.Steps = 500
	cfg.Harvest = 0.1

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Law != "logistic" || loaded.Params.R != 2.9 || loaded.Steps != 500 || loaded.Harvest != 0.1 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("ricker", "chaos")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Params.R != 3.5 {
		t.Errorf("expected r 3.5, got %f", cfg.Params.R)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("ricker", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "stable") != nil {
		t.Error("expected nil for nonexistent law")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets("ricker")) == 0 {
		t.Error("expected presets for ricker")
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent law")
	}
}
