// Package config provides configuration loading and access for the
// simulation and its frontends.
package config

import (
	_ "embed"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all tunables shared by the GUI, terminal, and headless
// frontends.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Board     BoardConfig     `yaml:"board"`
	Sim       SimConfig       `yaml:"sim"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Theme     string          `yaml:"theme"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	// Sizes is the resolution menu, width/height pairs in menu order.
	Sizes     [][2]int `yaml:"sizes"`
	CellSize  int      `yaml:"cell_size"`
	TargetTPS int      `yaml:"target_tps"`
}

// BoardConfig holds the boundary mode the session starts in.
type BoardConfig struct {
	Wrap bool `yaml:"wrap"`
}

// SimConfig holds simulation cadence and seeding parameters. Speeds are in
// generations per second.
type SimConfig struct {
	Seed              int64   `yaml:"seed"`
	RandomDensity     float64 `yaml:"random_density"`
	SpeedMin          float64 `yaml:"speed_min"`
	SpeedMax          float64 `yaml:"speed_max"`
	SpeedInit         float64 `yaml:"speed_init"`
	ParallelThreshold int     `yaml:"parallel_threshold"`
}

// TelemetryConfig holds the optional CSV output location. Empty disables
// telemetry.
type TelemetryConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	// The embedded defaults are compiled in and always parse.
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		panic(errors.Wrap(err, "parsing embedded defaults"))
	}
	return cfg
}

// Load reads a yaml file over the embedded defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, cfg.Validate()
}

// Validate rejects configurations the engine has no semantics for.
func (c Config) Validate() error {
	if len(c.Screen.Sizes) == 0 {
		return errors.New("screen.sizes must not be empty")
	}
	for _, s := range c.Screen.Sizes {
		if s[0] <= 0 || s[1] <= 0 {
			return errors.Errorf("screen size %dx%d must be positive", s[0], s[1])
		}
	}
	if c.Screen.CellSize <= 0 {
		return errors.Errorf("screen.cell_size %d must be positive", c.Screen.CellSize)
	}
	if c.Sim.RandomDensity < 0 || c.Sim.RandomDensity > 1 {
		return errors.Errorf("sim.random_density %v must be in [0,1]", c.Sim.RandomDensity)
	}
	if c.Sim.SpeedMin <= 0 || c.Sim.SpeedMax < c.Sim.SpeedMin {
		return errors.Errorf("sim speed bounds [%v, %v] invalid", c.Sim.SpeedMin, c.Sim.SpeedMax)
	}
	if c.Sim.SpeedInit < c.Sim.SpeedMin || c.Sim.SpeedInit > c.Sim.SpeedMax {
		return errors.Errorf("sim.speed_init %v outside [%v, %v]", c.Sim.SpeedInit, c.Sim.SpeedMin, c.Sim.SpeedMax)
	}
	return nil
}

// GridSize derives board dimensions from a screen size and the cell size.
func (c Config) GridSize(screenW, screenH int) (int, int) {
	return screenW / c.Screen.CellSize, screenH / c.Screen.CellSize
}
