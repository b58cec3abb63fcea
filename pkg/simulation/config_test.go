package simulation

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}
	if cfg.FrameInterval() != 50*time.Millisecond {
		t.Errorf("FrameInterval() = %v; want 50ms", cfg.FrameInterval())
	}
	dyn := cfg.Dynamics()
	if dyn.PursuerSpeed != 0.05 || dyn.TargetSpeed != 0.03 || dyn.MaxPopulation != 5 {
		t.Errorf("Dynamics() = %+v", dyn)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("json overrides", func(t *testing.T) {
		path := writeFile(t, "chase.json", `{"variant": "follow", "populationSize": 4, "safetyDistance": 2.5, "seed": 7}`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig: %v", err)
		}
		if cfg.Variant != "follow" || cfg.PopulationSize != 4 || cfg.SafetyDistance != 2.5 {
			t.Errorf("overrides not applied: %+v", cfg)
		}
		if cfg.ArenaSize != 10 || cfg.MaxPopulation != 5 {
			t.Errorf("defaults lost: arena %v, max %d", cfg.ArenaSize, cfg.MaxPopulation)
		}
		if cfg.Seed == nil || *cfg.Seed != 7 {
			t.Errorf("Seed = %v; want 7", cfg.Seed)
		}
	})

	t.Run("yaml overrides", func(t *testing.T) {
		path := writeFile(t, "chase.yaml", "populationSize: 2\narenaSize: 20\nleadDirection:\n  x: 0\n  y: 1\n")
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig: %v", err)
		}
		if cfg.PopulationSize != 2 || cfg.ArenaSize != 20 {
			t.Errorf("overrides not applied: %+v", cfg)
		}
		if cfg.LeadDirection != vec(0, 1) {
			t.Errorf("LeadDirection = %v; want (0, 1)", cfg.LeadDirection)
		}
		if cfg.Seed != nil {
			t.Errorf("Seed = %v; want nil", *cfg.Seed)
		}
	})

	t.Run("empty file gives defaults", func(t *testing.T) {
		cfg, err := LoadConfig(writeFile(t, "empty.json", `{}`))
		if err != nil {
			t.Fatalf("LoadConfig: %v", err)
		}
		if !reflect.DeepEqual(cfg, DefaultConfig()) {
			t.Errorf("LoadConfig(empty) = %+v; want defaults", cfg)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Error("expected an error for a missing file")
		}
	})
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"unknown property", "a.json", `{"bogus": 1}`},
		{"unknown variant", "b.json", `{"variant": "swarm"}`},
		{"population above max", "c.json", `{"populationSize": 9}`},
		{"non positive arena", "d.yaml", "arenaSize: 0\n"},
		{"wrong type", "e.json", `{"populationSize": "three"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, tt.file, tt.content))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("LoadConfig error = %v; want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Variant = "swarm"
	if err := cfg.Validate(); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Validate() = %v; want ErrUnknownVariant", err)
	}

	cfg = DefaultConfig()
	cfg.SafetyDistanceMin = 6
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Validate() = %v; want ErrInvalidConfig", err)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chase.yaml")
	want := DefaultConfig()
	want.PopulationSize = 5
	want.SafetyDistance = 1.75

	if err := want.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip = %+v; want %+v", got, want)
	}
}
