// Package themes holds the color palettes the renderers draw with.
package themes

import "image/color"

// Theme identifies a color palette.
type Theme int

const (
	Classic Theme = iota
	Dark
	Pastel
	Neon
)

// Colors groups everything a frontend needs to paint one frame.
type Colors struct {
	Background    color.RGBA
	Cell          color.RGBA
	Grid          color.RGBA
	Border        color.RGBA
	Text          color.RGBA
	TextSecondary color.RGBA
}

var palettes = map[Theme]Colors{
	Classic: {
		Background:    color.RGBA{A: 255},
		Cell:          color.RGBA{G: 255, A: 255},
		Grid:          color.RGBA{R: 38, G: 38, B: 38, A: 255},
		Border:        color.RGBA{R: 255, A: 255},
		Text:          color.RGBA{R: 255, G: 255, B: 255, A: 255},
		TextSecondary: color.RGBA{R: 128, G: 128, B: 128, A: 255},
	},
	Dark: {
		Background:    color.RGBA{A: 255},
		Cell:          color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Grid:          color.RGBA{R: 51, G: 51, B: 51, A: 255},
		Border:        color.RGBA{R: 204, G: 204, B: 204, A: 255},
		Text:          color.RGBA{R: 255, G: 255, B: 255, A: 255},
		TextSecondary: color.RGBA{R: 179, G: 179, B: 179, A: 255},
	},
	Pastel: {
		Background:    color.RGBA{R: 242, G: 242, B: 250, A: 255},
		Cell:          color.RGBA{R: 204, G: 153, B: 230, A: 255},
		Grid:          color.RGBA{R: 217, G: 217, B: 217, A: 255},
		Border:        color.RGBA{R: 153, G: 102, B: 204, A: 255},
		Text:          color.RGBA{R: 51, G: 51, B: 77, A: 255},
		TextSecondary: color.RGBA{R: 102, G: 102, B: 128, A: 255},
	},
	Neon: {
		Background:    color.RGBA{R: 13, G: 13, B: 26, A: 255},
		Cell:          color.RGBA{G: 255, B: 204, A: 255},
		Grid:          color.RGBA{R: 51, G: 51, B: 102, A: 255},
		Border:        color.RGBA{R: 255, B: 204, A: 255},
		Text:          color.RGBA{R: 204, G: 255, B: 255, A: 255},
		TextSecondary: color.RGBA{R: 153, G: 204, B: 255, A: 255},
	},
}

var names = map[Theme]string{
	Classic: "Classic",
	Dark:    "Dark",
	Pastel:  "Pastel",
	Neon:    "Neon",
}

// Colors returns the palette for the theme; unknown values fall back to
// Classic.
func (t Theme) Colors() Colors {
	if c, ok := palettes[t]; ok {
		return c
	}
	return palettes[Classic]
}

// Name returns the display name shown on the HUD.
func (t Theme) Name() string {
	if n, ok := names[t]; ok {
		return n
	}
	return names[Classic]
}

// Next cycles Classic -> Dark -> Pastel -> Neon -> Classic.
func (t Theme) Next() Theme {
	switch t {
	case Classic:
		return Dark
	case Dark:
		return Pastel
	case Pastel:
		return Neon
	default:
		return Classic
	}
}

// ByName resolves a configured theme name; unknown names map to Classic.
func ByName(name string) Theme {
	for t, n := range names {
		if n == name {
			return t
		}
	}
	return Classic
}
