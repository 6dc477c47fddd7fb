//go:build ebiten

package render

import (
	"image/color"

	"sparselife/internal/themes"
	"sparselife/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter rasterizes a live set into a board-sized RGBA image and draws
// it scaled, with optional grid lines and the board border on top.
type GridPainter struct {
	w, h  int
	img   *ebiten.Image
	buf   []byte
	pixel *ebiten.Image
}

// NewGridPainter allocates a painter for a board of size w*h cells.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	gp.pixel = ebiten.NewImage(1, 1)
	gp.pixel.Fill(color.White)
	return gp
}

// Blit uploads the live set into the painter image and draws the frame.
func (gp *GridPainter) Blit(dst *ebiten.Image, live core.LiveSet, colors themes.Colors, scale int, showGrid bool) {
	if scale <= 0 {
		scale = 1
	}
	fillLiveRGBA(gp.buf, live, gp.w, gp.h, colors.Cell, colors.Background)
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)

	if showGrid {
		gp.drawGridLines(dst, colors.Grid, scale)
	}
	gp.drawBorder(dst, colors.Border, scale)
}

// Size returns the board dimensions in cells.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

func (gp *GridPainter) drawGridLines(dst *ebiten.Image, col color.RGBA, scale int) {
	pw := float64(gp.w * scale)
	ph := float64(gp.h * scale)
	for x := 0; x <= gp.w; x++ {
		gp.fillRect(dst, float64(x*scale), 0, 1, ph, col)
	}
	for y := 0; y <= gp.h; y++ {
		gp.fillRect(dst, 0, float64(y*scale), pw, 1, col)
	}
}

func (gp *GridPainter) drawBorder(dst *ebiten.Image, col color.RGBA, scale int) {
	const thickness = 3
	pw := float64(gp.w * scale)
	ph := float64(gp.h * scale)
	gp.fillRect(dst, 0, 0, pw, thickness, col)
	gp.fillRect(dst, 0, ph-thickness, pw, thickness, col)
	gp.fillRect(dst, 0, 0, thickness, ph, col)
	gp.fillRect(dst, pw-thickness, 0, thickness, ph, col)
}

func (gp *GridPainter) fillRect(dst *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	dst.DrawImage(gp.pixel, op)
}
