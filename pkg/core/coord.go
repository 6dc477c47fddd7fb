package core

// Coord identifies a single cell on the board. It is a value type; two
// coords are equal iff both components match, which makes it usable as a
// map key.
type Coord struct {
	X int
	Y int
}

// NeighborOffsets lists the 8 relative positions around a cell, in reading
// order. The transition engine and tests iterate these directly.
var NeighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// checkedAdd adds d to a, reporting false when the sum overflows. Callers
// treat overflow the same as an out-of-bounds coordinate.
func checkedAdd(a, d int) (int, bool) {
	s := a + d
	if (d > 0 && s < a) || (d < 0 && s > a) {
		return 0, false
	}
	return s, true
}

// Offset returns the coordinate displaced by (dx, dy). The boolean is false
// when the displacement overflows integer range.
func (c Coord) Offset(dx, dy int) (Coord, bool) {
	x, ok := checkedAdd(c.X, dx)
	if !ok {
		return Coord{}, false
	}
	y, ok := checkedAdd(c.Y, dy)
	if !ok {
		return Coord{}, false
	}
	return Coord{X: x, Y: y}, true
}
