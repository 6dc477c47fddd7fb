package telemetry

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates a finished run.
type Summary struct {
	Generations int

	PopulationMean float64
	PopulationP50  float64
	PopulationP90  float64

	StepMeanMicros float64
	StepP90Micros  float64
}

// Summarize reduces a run's records to headline numbers. Empty input yields
// a zero Summary.
func Summarize(records []GenerationRecord) Summary {
	if len(records) == 0 {
		return Summary{}
	}

	pops := make([]float64, len(records))
	steps := make([]float64, len(records))
	for i, rec := range records {
		pops[i] = float64(rec.Population)
		steps[i] = float64(rec.StepMicros)
	}
	sort.Float64s(pops)
	sort.Float64s(steps)

	return Summary{
		Generations:    len(records),
		PopulationMean: stat.Mean(pops, nil),
		PopulationP50:  stat.Quantile(0.5, stat.Empirical, pops, nil),
		PopulationP90:  stat.Quantile(0.9, stat.Empirical, pops, nil),
		StepMeanMicros: stat.Mean(steps, nil),
		StepP90Micros:  stat.Quantile(0.9, stat.Empirical, steps, nil),
	}
}
