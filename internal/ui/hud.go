//go:build ebiten

package ui

import (
	"fmt"

	"sparselife/internal/themes"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws the status line and the controls help line over the board.
type HUD struct{}

// NewHUD constructs a HUD.
func NewHUD() *HUD { return &HUD{} }

// State is the per-frame snapshot the HUD formats.
type State struct {
	Generation uint64
	Paused     bool
	Speed      float64
	ShowGrid   bool
	Wrap       bool
	Theme      themes.Theme
}

const helpLine = "Controls: Space:Pause | N:Step | -/=:Speed | R:Random | C:Clear | G:Grid | W:Wrap | T:Theme | Esc:Menu | Mouse:Draw"

// Draw paints the two HUD lines in the theme's text colors.
func (h *HUD) Draw(screen *ebiten.Image, st State) {
	colors := st.Theme.Colors()
	mode := "RUN"
	if st.Paused {
		mode = "PAUSED"
	}
	info := fmt.Sprintf("Gen:%d | FPS:%.0f | %s | speed:%.1f gen/s | grid:%s | wrap:%s | Theme:%s",
		st.Generation, ebiten.ActualFPS(), mode, st.Speed,
		onOff(st.ShowGrid), onOff(st.Wrap), st.Theme.Name())

	face := basicfont.Face7x13
	text.Draw(screen, info, face, 10, 22, colors.Text)
	text.Draw(screen, helpLine, face, 10, 42, colors.TextSecondary)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
