package main

import (
	"log"
	"strings"
	"time"

	"sparselife/internal/config"
	"sparselife/internal/sim"
	"sparselife/pkg/core"
	"sparselife/pkg/patterns"

	"github.com/integrii/flaggy"
)

func main() {
	var (
		configPath string
		width      = 60
		height     = 30
		pattern    = "Glider"
		wrap       bool
		seed       = int64(42)
		interval   = 150 * time.Millisecond
	)
	flaggy.SetName("life-tui")
	flaggy.SetDescription("Conway's Game of Life in the terminal")
	flaggy.String(&configPath, "c", "config", "Path to a yaml config file")
	flaggy.Int(&width, "x", "width", "Board width in cells")
	flaggy.Int(&height, "y", "height", "Board height in cells")
	flaggy.String(&pattern, "p", "pattern", "Seed pattern ["+strings.Join(patterns.Names(), "|")+"]")
	flaggy.Bool(&wrap, "w", "wrap", "Enable toroidal wrapping")
	flaggy.Int64(&seed, "s", "seed", "Seed for random fills")
	flaggy.Duration(&interval, "i", "interval", "Time between generations, e.g. 150ms")
	flaggy.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	p, ok := patterns.ByName(pattern)
	if !ok {
		flaggy.ShowHelpAndExit("unknown pattern " + pattern)
	}

	topo, err := core.NewTopology(width, height, wrap || cfg.Board.Wrap)
	if err != nil {
		log.Fatalf("board: %v", err)
	}
	session := sim.New(topo, seed)
	session.SetParallelThreshold(cfg.Sim.ParallelThreshold)
	if p.Kind == patterns.KindRandom {
		session.Stamp(p, 0, 0)
	} else {
		session.Stamp(p, width/2, height/2)
	}

	t, err := newTUI(session, interval, cfg.Sim.RandomDensity)
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	t.Run()
}
