package themes

import "testing"

func TestCycleVisitsAllThemesAndReturns(t *testing.T) {
	order := []Theme{Classic, Dark, Pastel, Neon}
	cur := Classic
	for i := 1; i <= len(order); i++ {
		cur = cur.Next()
		if cur != order[i%len(order)] {
			t.Fatalf("step %d landed on %s", i, cur.Name())
		}
	}
	if cur != Classic {
		t.Fatalf("cycle did not return to Classic, got %s", cur.Name())
	}
}

func TestByName(t *testing.T) {
	for _, theme := range []Theme{Classic, Dark, Pastel, Neon} {
		if got := ByName(theme.Name()); got != theme {
			t.Fatalf("ByName(%s) = %s", theme.Name(), got.Name())
		}
	}
	if ByName("nope") != Classic {
		t.Fatal("unknown name did not fall back to Classic")
	}
}

func TestUnknownThemeFallsBack(t *testing.T) {
	bogus := Theme(42)
	if bogus.Colors() != Classic.Colors() {
		t.Fatal("unknown theme colors differ from Classic")
	}
	if bogus.Name() != "Classic" {
		t.Fatalf("unknown theme name %q", bogus.Name())
	}
}
