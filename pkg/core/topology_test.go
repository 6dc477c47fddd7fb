package core

import "testing"

func TestNewTopologyRejectsDegenerateDimensions(t *testing.T) {
	cases := [][2]int{{0, 10}, {10, 0}, {-1, 5}, {5, -1}, {0, 0}}
	for _, c := range cases {
		if _, err := NewTopology(c[0], c[1], false); err == nil {
			t.Fatalf("NewTopology(%d, %d) accepted degenerate dimensions", c[0], c[1])
		}
	}
	if _, err := NewTopology(1, 1, true); err != nil {
		t.Fatalf("NewTopology(1, 1) rejected valid dimensions: %v", err)
	}
}

func TestContains(t *testing.T) {
	topo, _ := NewTopology(4, 3, false)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true}, {3, 2, true}, {4, 2, false}, {3, 3, false},
		{-1, 0, false}, {0, -1, false}, {2, 1, true},
	}
	for _, c := range cases {
		if got := topo.Contains(c.x, c.y); got != c.want {
			t.Fatalf("Contains(%d, %d) = %v, expected %v", c.x, c.y, got, c.want)
		}
	}
}

func TestCanonicalizeFloorModulo(t *testing.T) {
	topo, _ := NewTopology(5, 3, true)
	cases := []struct {
		x, y int
		want Coord
	}{
		{0, 0, Coord{0, 0}},
		{5, 3, Coord{0, 0}},
		{-1, -1, Coord{4, 2}},
		{-5, -3, Coord{0, 0}},
		{-6, -4, Coord{4, 2}},
		{12, 7, Coord{2, 1}},
		{-13, 2, Coord{2, 2}},
	}
	for _, c := range cases {
		if got := topo.Canonicalize(c.x, c.y); got != c.want {
			t.Fatalf("Canonicalize(%d, %d) = %v, expected %v", c.x, c.y, got, c.want)
		}
	}
}

func TestCanonicalizeTotalAndIdempotent(t *testing.T) {
	topo, _ := NewTopology(7, 4, true)
	for x := -30; x <= 30; x++ {
		for y := -30; y <= 30; y++ {
			c := topo.Canonicalize(x, y)
			if c.X < 0 || c.X >= topo.Width || c.Y < 0 || c.Y >= topo.Height {
				t.Fatalf("Canonicalize(%d, %d) = %v escapes the board", x, y, c)
			}
			if again := topo.Canonicalize(c.X, c.Y); again != c {
				t.Fatalf("Canonicalize not idempotent at (%d, %d): %v then %v", x, y, c, again)
			}
		}
	}
}

func TestAdmitByMode(t *testing.T) {
	bounded, _ := NewTopology(4, 4, false)
	if _, ok := bounded.Admit(4, 0); ok {
		t.Fatal("bounded Admit accepted an out-of-bounds coordinate")
	}
	if c, ok := bounded.Admit(3, 3); !ok || c != (Coord{3, 3}) {
		t.Fatalf("bounded Admit(3, 3) = %v, %v", c, ok)
	}

	wrapped, _ := NewTopology(4, 4, true)
	if c, ok := wrapped.Admit(-1, 5); !ok || c != (Coord{3, 1}) {
		t.Fatalf("wrapped Admit(-1, 5) = %v, %v, expected (3,1), true", c, ok)
	}
}
