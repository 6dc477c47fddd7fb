// Package patterns holds the named seed patterns that can be stamped onto a
// board, plus the density-driven random fill pseudo-pattern.
package patterns

import "sparselife/pkg/core"

// Kind discriminates the two ways a pattern materializes. The set of kinds
// is closed: fixed offset lists, and the per-cell Bernoulli random fill.
type Kind int

const (
	// KindOffsets patterns place a fixed cluster relative to an anchor.
	KindOffsets Kind = iota
	// KindRandom fills the whole board cell by cell with a given density,
	// ignoring the anchor.
	KindRandom
)

// DefaultRandomDensity is the live probability used by the registry's
// Random entry.
const DefaultRandomDensity = 0.20

// Offset is a cell position relative to the stamp anchor.
type Offset struct {
	DX int
	DY int
}

// Pattern is an immutable named stamp. Offset patterns carry their cell
// list; the random pattern carries a density instead.
type Pattern struct {
	Name    string
	Kind    Kind
	Offsets []Offset
	Density float64
}

// Stamp materializes the pattern onto live. Every cell goes through
// Topology.Admit, so a stamp near an edge is clipped (bounded) or wrapped
// (torus) cell by cell rather than rejected wholesale. rng is only consulted
// by the random kind and may be nil for offset patterns.
func (p Pattern) Stamp(live core.LiveSet, topo core.Topology, anchorX, anchorY int, rng *core.RNG) {
	if p.Kind == KindRandom {
		for y := 0; y < topo.Height; y++ {
			for x := 0; x < topo.Width; x++ {
				if rng.Float64() < p.Density {
					live.Insert(topo, x, y)
				}
			}
		}
		return
	}
	anchor := core.Coord{X: anchorX, Y: anchorY}
	for _, off := range p.Offsets {
		c, ok := anchor.Offset(off.DX, off.DY)
		if !ok {
			continue
		}
		live.Insert(topo, c.X, c.Y)
	}
}

func offsets(pairs ...[2]int) []Offset {
	out := make([]Offset, len(pairs))
	for i, p := range pairs {
		out[i] = Offset{DX: p[0], DY: p[1]}
	}
	return out
}
