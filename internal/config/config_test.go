package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsAreValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded defaults invalid: %v", err)
	}
	if cfg.Screen.CellSize != 10 {
		t.Fatalf("cell_size %d, expected 10", cfg.Screen.CellSize)
	}
	if cfg.Sim.RandomDensity != 0.20 {
		t.Fatalf("random_density %v, expected 0.20", cfg.Sim.RandomDensity)
	}
	if len(cfg.Screen.Sizes) != 5 || cfg.Screen.Sizes[0] != [2]int{640, 480} {
		t.Fatalf("unexpected size table: %v", cfg.Screen.Sizes)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	body := "board:\n  wrap: true\nsim:\n  speed_init: 20\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Board.Wrap {
		t.Fatal("wrap override lost")
	}
	if cfg.Sim.SpeedInit != 20 {
		t.Fatalf("speed_init %v, expected 20", cfg.Sim.SpeedInit)
	}
	// Untouched fields keep defaults.
	if cfg.Screen.CellSize != 10 {
		t.Fatalf("cell_size %v, expected default 10", cfg.Screen.CellSize)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("missing file did not error")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []func(*Config){
		func(c *Config) { c.Screen.CellSize = 0 },
		func(c *Config) { c.Screen.Sizes = nil },
		func(c *Config) { c.Screen.Sizes = [][2]int{{0, 480}} },
		func(c *Config) { c.Sim.RandomDensity = 1.5 },
		func(c *Config) { c.Sim.SpeedMin = 0 },
		func(c *Config) { c.Sim.SpeedInit = 999 },
	}
	for i, mutate := range cases {
		cfg := Default()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("case %d passed validation", i)
		}
	}
}

func TestGridSize(t *testing.T) {
	cfg := Default()
	w, h := cfg.GridSize(640, 480)
	if w != 64 || h != 48 {
		t.Fatalf("GridSize(640, 480) = %dx%d, expected 64x48", w, h)
	}
}
