// lifebench runs the simulation headless for a fixed number of generations,
// optionally recording per-generation telemetry, and prints a run summary.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"sparselife/internal/config"
	"sparselife/internal/sim"
	"sparselife/internal/telemetry"
	"sparselife/pkg/core"
	"sparselife/pkg/patterns"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"
)

func main() {
	var (
		configPath  string
		width       = 200
		height      = 200
		pattern     = "Acorn"
		generations = 1000
		wrap        bool
		seed        = int64(42)
		density     = patterns.DefaultRandomDensity
		outDir      string
		logEvery    = 200
	)
	flaggy.SetName("lifebench")
	flaggy.SetDescription("Headless Game of Life batch runner")
	flaggy.String(&configPath, "c", "config", "Path to a yaml config file")
	flaggy.Int(&width, "x", "width", "Board width in cells")
	flaggy.Int(&height, "y", "height", "Board height in cells")
	flaggy.String(&pattern, "p", "pattern", "Seed pattern ["+strings.Join(patterns.Names(), "|")+"]")
	flaggy.Int(&generations, "g", "generations", "Generations to simulate")
	flaggy.Bool(&wrap, "w", "wrap", "Enable toroidal wrapping")
	flaggy.Int64(&seed, "s", "seed", "Seed for random fills")
	flaggy.Float64(&density, "d", "density", "Live probability for the Random pattern")
	flaggy.String(&outDir, "o", "out", "Telemetry output directory (empty disables)")
	flaggy.Int(&logEvery, "l", "log-every", "Progress log interval in generations")
	flaggy.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if outDir == "" {
		outDir = cfg.Telemetry.Dir
	}

	p, ok := patterns.ByName(pattern)
	if !ok {
		flaggy.ShowHelpAndExit("unknown pattern " + pattern)
	}
	if p.Kind == patterns.KindRandom {
		p.Density = density
	}

	topo, err := core.NewTopology(width, height, wrap)
	if err != nil {
		log.Fatalf("board: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	recorder, err := telemetry.NewRecorder(outDir)
	if err != nil {
		log.Fatalf("telemetry: %v", err)
	}
	defer recorder.Close()

	session := sim.New(topo, seed)
	session.SetParallelThreshold(cfg.Sim.ParallelThreshold)
	if p.Kind == patterns.KindRandom {
		session.Stamp(p, 0, 0)
	} else {
		session.Stamp(p, width/2, height/2)
	}

	logger.Info("run starting",
		"board", fmt.Sprintf("%dx%d", width, height),
		"wrap", wrap,
		"pattern", p.Name,
		"generations", generations,
		"initial_population", session.Population(),
	)

	records := make([]telemetry.GenerationRecord, 0, generations)
	start := time.Now()
	for i := 0; i < generations; i++ {
		stepStart := time.Now()
		session.Advance()
		rec := telemetry.GenerationRecord{
			Generation: session.Generation(),
			Population: session.Population(),
			Density:    session.Density(),
			StepMicros: time.Since(stepStart).Microseconds(),
		}
		records = append(records, rec)
		if err := recorder.Write(rec); err != nil {
			log.Fatalf("telemetry: %v", err)
		}

		if logEvery > 0 && (i+1)%logEvery == 0 {
			logger.Info("progress", "generation", rec.Generation, "population", rec.Population)
		}
		if rec.Population == 0 {
			logger.Info("board died out", "generation", rec.Generation)
			break
		}
	}
	elapsed := time.Since(start)

	s := telemetry.Summarize(records)
	fmt.Println(aurora.Green(fmt.Sprintf("finished %d generations in %v", s.Generations, elapsed.Round(time.Millisecond))))
	fmt.Printf("population mean=%.1f p50=%.0f p90=%.0f\n", s.PopulationMean, s.PopulationP50, s.PopulationP90)
	fmt.Printf("step mean=%.0fus p90=%.0fus (%.0f gen/s)\n",
		s.StepMeanMicros, s.StepP90Micros, float64(s.Generations)/elapsed.Seconds())
	if outDir != "" {
		fmt.Printf("telemetry written to %s\n", outDir)
	}
}
