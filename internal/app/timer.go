package app

import "time"

// maxStepsPerFrame bounds the catch-up burst after a long frame so slow
// machines degrade to slower simulation instead of a freeze.
const maxStepsPerFrame = 16

// FixedStep accumulates real time and converts it into a whole number of
// simulation steps at a configurable generations-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a controller targeting the given rate.
func NewFixedStep(genPerSec float64) *FixedStep {
	fs := &FixedStep{}
	fs.SetRate(genPerSec)
	return fs
}

// SetRate changes the generations-per-second target. It is safe to call
// from the main loop.
func (f *FixedStep) SetRate(genPerSec float64) {
	if genPerSec <= 0 {
		genPerSec = 1
	}
	f.step = time.Duration(float64(time.Second) / genPerSec)
}

// Steps returns how many whole simulation steps have accrued since the last
// call, capped at maxStepsPerFrame.
func (f *FixedStep) Steps() int {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now

	n := 0
	for f.accumulator >= f.step && n < maxStepsPerFrame {
		f.accumulator -= f.step
		n++
	}
	if f.accumulator > f.step {
		// Discard backlog beyond the cap.
		f.accumulator = f.step
	}
	return n
}

// Reset drops any accumulated time, used when leaving pause so the backlog
// built up while paused is not replayed.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Now()
}
