//go:build ebiten

package main

import (
	"errors"
	"log"

	"sparselife/internal/app"
	"sparselife/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"
)

func main() {
	var (
		configPath string
		wrap       bool
		seed       int64
	)
	flaggy.SetName("life")
	flaggy.SetDescription("Conway's Game of Life")
	flaggy.String(&configPath, "c", "config", "Path to a yaml config file")
	flaggy.Bool(&wrap, "w", "wrap", "Start with toroidal wrapping enabled")
	flaggy.Int64(&seed, "s", "seed", "Seed for the random pattern and fills")
	flaggy.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if wrap {
		cfg.Board.Wrap = true
	}
	if seed != 0 {
		cfg.Sim.Seed = seed
	}

	game := app.New(cfg, cfg.Sim.Seed)

	ebiten.SetWindowTitle("sparselife: Conway's Game of Life")
	ebiten.SetTPS(cfg.Screen.TargetTPS)
	ebiten.SetWindowSize(640, 480)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
