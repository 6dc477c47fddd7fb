//go:build !ebiten

package ui

import (
	"image/color"

	"sparselife/internal/themes"
)

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns a stub HUD in the headless build.
func NewHUD() *HUD { return &HUD{} }

// State mirrors the GUI build's HUD snapshot.
type State struct {
	Generation uint64
	Paused     bool
	Speed      float64
	ShowGrid   bool
	Wrap       bool
	Theme      themes.Theme
}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, State) {}

// Menu is a no-op placeholder for headless builds.
type Menu struct {
	Title      string
	Items      []string
	Footer     string
	Background color.RGBA
	AllowBack  bool
}

// Selected returns zero in the headless build.
func (m *Menu) Selected() int { return 0 }

// Reset is a no-op in the headless build.
func (m *Menu) Reset(int) {}

// Update reports no input in the headless build.
func (m *Menu) Update() (bool, bool) { return false, false }

// Draw is a no-op in the headless build.
func (m *Menu) Draw(any) {}
