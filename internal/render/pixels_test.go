package render

import (
	"image/color"
	"testing"

	"sparselife/pkg/core"
)

func TestFillLiveRGBA(t *testing.T) {
	topo, _ := core.NewTopology(3, 2, false)
	live := core.NewLiveSet()
	live.Insert(topo, 1, 0)
	live.Insert(topo, 2, 1)

	on := color.RGBA{G: 255, A: 255}
	off := color.RGBA{A: 255}
	buf := make([]byte, 4*3*2)
	fillLiveRGBA(buf, live, 3, 2, on, off)

	pixel := func(x, y int) [4]byte {
		base := (y*3 + x) * 4
		return [4]byte{buf[base], buf[base+1], buf[base+2], buf[base+3]}
	}
	want := [4]byte{0, 255, 0, 255}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			got := pixel(x, y)
			alive := live.Has(core.Coord{X: x, Y: y})
			if alive && got != want {
				t.Fatalf("live cell (%d,%d) pixel %v", x, y, got)
			}
			if !alive && got != [4]byte{0, 0, 0, 255} {
				t.Fatalf("dead cell (%d,%d) pixel %v", x, y, got)
			}
		}
	}
}
