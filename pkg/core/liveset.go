package core

// LiveSet is the sparse simulation state: the set of currently-alive
// coordinates. Membership implies the coordinate was admitted by the
// session's Topology.
type LiveSet map[Coord]struct{}

// NewLiveSet returns an empty set.
func NewLiveSet() LiveSet { return make(LiveSet) }

// Has reports whether c is alive.
func (s LiveSet) Has(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Len returns the live-cell count.
func (s LiveSet) Len() int { return len(s) }

// Insert marks the admitted form of (x, y) alive. Inserting an already-live
// cell is a no-op, as is an out-of-bounds coordinate on a bounded board.
func (s LiveSet) Insert(topo Topology, x, y int) {
	if c, ok := topo.Admit(x, y); ok {
		s[c] = struct{}{}
	}
}

// Toggle flips membership of the admitted form of (x, y). Rejected
// coordinates are ignored.
func (s LiveSet) Toggle(topo Topology, x, y int) {
	c, ok := topo.Admit(x, y)
	if !ok {
		return
	}
	if _, alive := s[c]; alive {
		delete(s, c)
		return
	}
	s[c] = struct{}{}
}

// Coords returns the members as a slice, in no particular order.
func (s LiveSet) Coords() []Coord {
	out := make([]Coord, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	return out
}
