package core

import "testing"

func fill(live LiveSet, topo Topology, cells [][2]int) {
	for _, c := range cells {
		live.Insert(topo, c[0], c[1])
	}
}

func sameSet(t *testing.T, got, want LiveSet) {
	t.Helper()
	if got.Len() != want.Len() {
		t.Fatalf("set size %d, expected %d: got %v, want %v", got.Len(), want.Len(), got.Coords(), want.Coords())
	}
	for c := range want {
		if !got.Has(c) {
			t.Fatalf("missing cell %v: got %v", c, got.Coords())
		}
	}
}

func TestEmptyBoardStaysEmpty(t *testing.T) {
	for _, wrap := range []bool{false, true} {
		topo, _ := NewTopology(8, 8, wrap)
		if next := Next(NewLiveSet(), topo); next.Len() != 0 {
			t.Fatalf("empty board (wrap=%v) produced cells: %v", wrap, next.Coords())
		}
	}
}

func TestBlockIsFixedPoint(t *testing.T) {
	topo, _ := NewTopology(6, 6, false)
	live := NewLiveSet()
	fill(live, topo, [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}})

	next := Next(live, topo)
	sameSet(t, next, live)
}

func TestBlinkerPeriodTwo(t *testing.T) {
	topo, _ := NewTopology(5, 5, false)
	start := NewLiveSet()
	fill(start, topo, [][2]int{{1, 2}, {2, 2}, {3, 2}})

	vertical := Next(start, topo)
	want := NewLiveSet()
	fill(want, topo, [][2]int{{2, 1}, {2, 2}, {2, 3}})
	sameSet(t, vertical, want)

	back := Next(vertical, topo)
	sameSet(t, back, start)
}

func TestGliderTranslatesByOneOneInFourSteps(t *testing.T) {
	topo, _ := NewTopology(10, 10, false)
	glider := [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}

	live := NewLiveSet()
	fill(live, topo, glider)
	for i := 0; i < 4; i++ {
		live = Next(live, topo)
	}

	want := NewLiveSet()
	for _, c := range glider {
		want.Insert(topo, c[0]+1, c[1]+1)
	}
	sameSet(t, live, want)
}

func TestBlinkerAcrossWrapSeam(t *testing.T) {
	topo, _ := NewTopology(5, 5, true)
	live := NewLiveSet()
	fill(live, topo, [][2]int{{4, 2}, {0, 2}, {1, 2}})

	next := Next(live, topo)
	want := NewLiveSet()
	fill(want, topo, [][2]int{{0, 1}, {0, 2}, {0, 3}})
	sameSet(t, next, want)
}

func TestDegenerateTorusSelfNeighbors(t *testing.T) {
	// On a 1x1 torus every offset wraps back to the cell itself, so a lone
	// cell counts as its own neighbor 8 times and dies of overcrowding.
	topo, _ := NewTopology(1, 1, true)
	live := NewLiveSet()
	live.Insert(topo, 0, 0)

	next := Next(live, topo)
	if next.Len() != 0 {
		t.Fatalf("lone cell on 1x1 torus survived: %v", next.Coords())
	}
}

func TestBoundedEdgeSpillIsDropped(t *testing.T) {
	// A horizontal blinker touching the left edge flips to vertical without
	// phantom births outside the board.
	topo, _ := NewTopology(5, 5, false)
	live := NewLiveSet()
	fill(live, topo, [][2]int{{0, 2}, {1, 2}, {2, 2}})

	next := Next(live, topo)
	want := NewLiveSet()
	fill(want, topo, [][2]int{{1, 1}, {1, 2}, {1, 3}})
	sameSet(t, next, want)
}

func TestNextParallelMatchesNext(t *testing.T) {
	for _, wrap := range []bool{false, true} {
		topo, _ := NewTopology(48, 32, wrap)
		rng := NewRNG(42)

		live := NewLiveSet()
		for y := 0; y < topo.Height; y++ {
			for x := 0; x < topo.Width; x++ {
				if rng.Float64() < 0.3 {
					live.Insert(topo, x, y)
				}
			}
		}

		for i := 0; i < 10; i++ {
			serial := Next(live, topo)
			parallel := NextParallel(live, topo, 4)
			sameSet(t, parallel, serial)
			live = serial
		}
	}
}

func TestNextDoesNotMutateInput(t *testing.T) {
	topo, _ := NewTopology(5, 5, false)
	live := NewLiveSet()
	fill(live, topo, [][2]int{{1, 2}, {2, 2}, {3, 2}})

	before := live.Coords()
	_ = Next(live, topo)
	if live.Len() != len(before) {
		t.Fatalf("input set mutated: %v", live.Coords())
	}
	for _, c := range before {
		if !live.Has(c) {
			t.Fatalf("input set lost %v", c)
		}
	}
}
