package core

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Next computes the following generation from the current live set. The
// returned set is freshly allocated; the input is never mutated, so callers
// can keep rendering the previous generation while swapping in the new one.
//
// Counting is driven by live cells' neighborhoods rather than a full board
// scan: O(|live| * 8) regardless of board size. Each candidate neighbor is
// routed through Topology.Admit, which is what makes toroidal boards count
// across the seam and bounded boards silently drop edge spill.
func Next(live LiveSet, topo Topology) LiveSet {
	counts := make(map[Coord]uint8, len(live)*4+8)
	for cell := range live {
		accumulate(counts, cell, topo)
	}
	return applyRule(counts, live)
}

// NextParallel computes the same result as Next by partitioning the live
// cells across workers, each with a private count map, merged by addition
// before the rule pass. Merge order is irrelevant because counting is
// commutative. workers <= 0 uses GOMAXPROCS.
func NextParallel(live LiveSet, topo Topology, workers int) LiveSet {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers <= 1 || len(live) < workers {
		return Next(live, topo)
	}

	cells := live.Coords()
	chunk := (len(cells) + workers - 1) / workers
	partials := make([]map[Coord]uint8, workers)

	var eg errgroup.Group
	for i := 0; i < workers; i++ {
		start := i * chunk
		if start >= len(cells) {
			break
		}
		end := start + chunk
		if end > len(cells) {
			end = len(cells)
		}
		i := i
		part := cells[start:end]
		eg.Go(func() error {
			local := make(map[Coord]uint8, len(part)*4+8)
			for _, cell := range part {
				accumulate(local, cell, topo)
			}
			partials[i] = local
			return nil
		})
	}
	// Workers never return errors; Wait is only a join point.
	_ = eg.Wait()

	counts := make(map[Coord]uint8, len(live)*4+8)
	for _, local := range partials {
		for c, n := range local {
			counts[c] += n
		}
	}
	return applyRule(counts, live)
}

// accumulate distributes one live cell's presence to its 8 admitted
// neighbors.
func accumulate(counts map[Coord]uint8, cell Coord, topo Topology) {
	for _, off := range NeighborOffsets {
		cand, ok := cell.Offset(off[0], off[1])
		if !ok {
			continue
		}
		if c, ok := topo.Admit(cand.X, cand.Y); ok {
			counts[c]++
		}
	}
}

// applyRule builds the next generation from the neighbor counts: birth on
// exactly 3, survival on exactly 2 or 3. Live cells that collected no
// neighbors never appear in counts and therefore die.
func applyRule(counts map[Coord]uint8, live LiveSet) LiveSet {
	next := make(LiveSet, len(live))
	for c, n := range counts {
		if n == 3 || (n == 2 && live.Has(c)) {
			next[c] = struct{}{}
		}
	}
	return next
}
