//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Menu is a keyboard-driven selection list: Up/Down move, Enter confirms,
// Escape backs out when AllowBack is set.
type Menu struct {
	Title      string
	Items      []string
	Footer     string
	Background color.RGBA
	AllowBack  bool

	selected int
}

// Selected returns the highlighted index.
func (m *Menu) Selected() int { return m.selected }

// Reset moves the highlight back to the given index.
func (m *Menu) Reset(index int) {
	if index < 0 || index >= len(m.Items) {
		index = 0
	}
	m.selected = index
}

// Update processes one frame of input. confirmed is true when Enter was
// pressed; backed is true when Escape was pressed on a backable menu.
func (m *Menu) Update() (confirmed, backed bool) {
	if len(m.Items) == 0 {
		return false, false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		m.selected = (m.selected + len(m.Items) - 1) % len(m.Items)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		m.selected = (m.selected + 1) % len(m.Items)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return true, false
	}
	if m.AllowBack && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return false, true
	}
	return false, false
}

// Draw paints the menu over the whole screen.
func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(m.Background)
	face := basicfont.Face7x13
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	green := color.RGBA{G: 255, A: 255}

	text.Draw(screen, m.Title, face, 20, 50, white)
	for i, item := range m.Items {
		marker := " "
		if i == m.selected {
			marker = ">"
		}
		text.Draw(screen, fmt.Sprintf("%s %s", marker, item), face, 40, 100+i*30, white)
	}
	text.Draw(screen, m.Footer, face, 20, 100+len(m.Items)*30+30, green)
}
