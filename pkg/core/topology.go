package core

import "github.com/pkg/errors"

// Size describes the dimensions of a board.
type Size struct {
	W int
	H int
}

// Topology describes the board dimensions and boundary behavior. With
// Wrap set the board is a torus; otherwise it is a finite rectangle with
// hard edges. Width and height never change after construction.
type Topology struct {
	Width  int
	Height int
	Wrap   bool
}

// NewTopology constructs a Topology, rejecting degenerate dimensions.
func NewTopology(width, height int, wrap bool) (Topology, error) {
	if width <= 0 || height <= 0 {
		return Topology{}, errors.Errorf("topology dimensions must be positive, got %dx%d", width, height)
	}
	return Topology{Width: width, Height: height, Wrap: wrap}, nil
}

// Size returns the board dimensions.
func (t Topology) Size() Size { return Size{W: t.Width, H: t.Height} }

// Contains reports whether (x, y) lies within [0,W) x [0,H). Only meaningful
// for bounded boards; wrapped boards canonicalize instead.
func (t Topology) Contains(x, y int) bool {
	return x >= 0 && x < t.Width && y >= 0 && y < t.Height
}

// Canonicalize reduces (x, y) into [0,W) x [0,H) with a floor-style modulo,
// so negative remainders are corrected by adding the modulus. Total over all
// ints and idempotent on already-canonical coordinates.
func (t Topology) Canonicalize(x, y int) Coord {
	x = (x%t.Width + t.Width) % t.Width
	y = (y%t.Height + t.Height) % t.Height
	return Coord{X: x, Y: y}
}

// Admit converts a raw coordinate into a board coordinate. Wrapped boards
// canonicalize; bounded boards accept only in-bounds coordinates. Every
// insertion into a LiveSet goes through here, so out-of-bounds coordinates
// are dropped in exactly one place.
func (t Topology) Admit(x, y int) (Coord, bool) {
	if t.Wrap {
		return t.Canonicalize(x, y), true
	}
	if t.Contains(x, y) {
		return Coord{X: x, Y: y}, true
	}
	return Coord{}, false
}
