// Package sim owns the simulation session: the live set, its topology, and
// the generation counter. Rendering and input layers talk to the engine
// exclusively through a Session.
package sim

import (
	"sparselife/pkg/core"
	"sparselife/pkg/patterns"
)

// DefaultParallelThreshold is the live-cell count above which Advance
// switches to the partitioned stepper.
const DefaultParallelThreshold = 4096

// Session is a single board simulation. It is not safe for concurrent use;
// drivers that tick from a goroutine serialize access themselves.
type Session struct {
	topo core.Topology
	live core.LiveSet
	gen  uint64
	rng  *core.RNG

	parallelThreshold int
}

// New constructs an empty session over the given topology.
func New(topo core.Topology, seed int64) *Session {
	return &Session{
		topo:              topo,
		live:              core.NewLiveSet(),
		rng:               core.NewRNG(seed),
		parallelThreshold: DefaultParallelThreshold,
	}
}

// SetParallelThreshold overrides the live-cell count that triggers the
// parallel stepper. Zero or negative disables parallel stepping.
func (s *Session) SetParallelThreshold(n int) { s.parallelThreshold = n }

// Advance replaces the live set with the next generation and increments the
// generation counter by exactly one.
func (s *Session) Advance() {
	if s.parallelThreshold > 0 && s.live.Len() >= s.parallelThreshold {
		s.live = core.NextParallel(s.live, s.topo, 0)
	} else {
		s.live = core.Next(s.live, s.topo)
	}
	s.gen++
}

// Insert marks a cell alive, subject to boundary admission.
func (s *Session) Insert(x, y int) { s.live.Insert(s.topo, x, y) }

// Toggle flips a cell's state, subject to boundary admission.
func (s *Session) Toggle(x, y int) { s.live.Toggle(s.topo, x, y) }

// Clear empties the board and resets the generation counter, keeping the
// displayed generation in sync with actual board history.
func (s *Session) Clear() {
	s.live = core.NewLiveSet()
	s.gen = 0
}

// Stamp places a pattern at the given anchor through the same admission
// path as manual drawing.
func (s *Session) Stamp(p patterns.Pattern, anchorX, anchorY int) {
	p.Stamp(s.live, s.topo, anchorX, anchorY, s.rng)
}

// RandomFill inserts every board cell independently with the given
// probability.
func (s *Session) RandomFill(density float64) {
	for y := 0; y < s.topo.Height; y++ {
		for x := 0; x < s.topo.Width; x++ {
			if s.rng.Float64() < density {
				s.Insert(x, y)
			}
		}
	}
}

// SetWrap switches the boundary mode at runtime. Cells placed under the
// previous mode are not re-canonicalized; the next transition reaps any
// that no longer fit.
func (s *Session) SetWrap(wrap bool) { s.topo.Wrap = wrap }

// Wrap reports the current boundary mode.
func (s *Session) Wrap() bool { return s.topo.Wrap }

// Topology returns the session's board description.
func (s *Session) Topology() core.Topology { return s.topo }

// Size returns the board dimensions.
func (s *Session) Size() core.Size { return s.topo.Size() }

// Live exposes the current live set for rendering. Callers must not mutate
// it; the set is replaced wholesale on each Advance.
func (s *Session) Live() core.LiveSet { return s.live }

// Generation returns the number of completed transitions since the last
// Clear.
func (s *Session) Generation() uint64 { return s.gen }

// Population returns the live-cell count.
func (s *Session) Population() int { return s.live.Len() }

// Density returns the live fraction of the board.
func (s *Session) Density() float64 {
	return float64(s.live.Len()) / float64(s.topo.Width*s.topo.Height)
}
