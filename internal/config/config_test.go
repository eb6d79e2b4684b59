package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Solver != "newton" {
		t.Errorf("expected solver newton, got %s", cfg.Solver)
	}
	if cfg.Orbit.Period <= 0 {
		t.Error("period should be positive")
	}
	if err := cfg.Orbit.Validate(); err != nil {
		t.Errorf("default orbit should validate: %v", err)
	}
	if cfg.Grid.NT < 2 {
		t.Error("default NT should allow interpolation")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("hd156846b")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Orbit.Ecc != 0.847 {
		t.Errorf("expected eccentricity 0.847, got %f", cfg.Orbit.Ecc)
	}

	if GetPreset("ross128b") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}

	for _, name := range names {
		cfg := GetPreset(name)
		if cfg == nil {
			t.Fatalf("listed preset %s not retrievable", name)
		}
		if err := cfg.Orbit.Validate(); err != nil {
			t.Errorf("preset %s has invalid orbit: %v", name, err)
		}
		if cfg.Grid.NT < 2 || cfg.Grid.N < 1 {
			t.Errorf("preset %s has degenerate grid", name)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbit.yaml")

	want := DefaultConfig()
	want.Solver = "halley"
	want.Orbit.Ecc = 0.25
	want.Grid.N = 123

	if err := Save(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if got.Solver != "halley" {
		t.Errorf("expected solver halley, got %s", got.Solver)
	}
	if got.Orbit.Ecc != 0.25 {
		t.Errorf("expected ecc 0.25, got %f", got.Orbit.Ecc)
	}
	if got.Grid.N != 123 {
		t.Errorf("expected N 123, got %d", got.Grid.N)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGenerateConfig(t *testing.T) {
	cfg := DefaultConfig()
	gen := cfg.GenerateConfig()

	if gen.Start != cfg.Grid.Start || gen.End != cfg.Grid.End {
		t.Error("span not carried over")
	}
	if gen.NT != cfg.Grid.NT || gen.N != cfg.Grid.N {
		t.Error("resolutions not carried over")
	}
}
