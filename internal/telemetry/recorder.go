// Package telemetry writes per-generation run records to CSV and computes
// run summaries. It is observability output, not reloadable board state.
package telemetry

import (
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

// GenerationRecord is one row of generations.csv.
type GenerationRecord struct {
	Generation uint64  `csv:"generation"`
	Population int     `csv:"population"`
	Density    float64 `csv:"density"`
	StepMicros int64   `csv:"step_us"`
}

// Recorder appends generation records to <dir>/generations.csv. A nil
// Recorder is valid and discards everything, so callers can keep telemetry
// optional without branching.
type Recorder struct {
	dir  string
	file *os.File

	headerWritten bool
}

// NewRecorder creates the output directory and opens the CSV file. Returns
// nil when dir is empty (telemetry disabled).
func NewRecorder(dir string) (*Recorder, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating telemetry directory")
	}
	path := filepath.Join(dir, "generations.csv")
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "creating %s", path)
	}
	return &Recorder{dir: dir, file: f}, nil
}

// Write appends one record, emitting the header on first use.
func (r *Recorder) Write(rec GenerationRecord) error {
	if r == nil {
		return nil
	}
	rows := []GenerationRecord{rec}
	if !r.headerWritten {
		if err := gocsv.Marshal(rows, r.file); err != nil {
			return errors.Wrap(err, "writing telemetry header row")
		}
		r.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(rows, r.file); err != nil {
		return errors.Wrap(err, "writing telemetry row")
	}
	return nil
}

// Close flushes and closes the CSV file.
func (r *Recorder) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	return r.file.Close()
}
