package common

import (
	"image/color"

	"github.com/mitchelldurbincs/TicTacToe/internal/config"
	"github.com/mitchelldurbincs/TicTacToe/internal/game/core"
)

const hoverAlpha = 64

// Palette holds every color the GUI draws with
type Palette struct {
	Background   color.RGBA
	Cell         color.RGBA
	WinLine      color.RGBA
	MarkX        color.RGBA
	MarkO        color.RGBA
	GridLines    color.RGBA
	Text         color.RGBA
	CurrentEntry color.RGBA
	// Hover tints an empty legal cell under the cursor
	Hover color.RGBA
}

// DefaultPalette matches the configuration defaults
var DefaultPalette = Palette{
	Background:   color.RGBA{30, 30, 36, 255},
	Cell:         color.RGBA{235, 235, 235, 255},
	WinLine:      color.RGBA{255, 215, 0, 255}, // Yellow
	MarkX:        color.RGBA{200, 50, 50, 255}, // Red
	MarkO:        color.RGBA{50, 100, 200, 255}, // Blue
	GridLines:    color.RGBA{60, 60, 60, 255},
	Text:         color.RGBA{230, 230, 230, 255},
	CurrentEntry: color.RGBA{255, 215, 0, 255},
	Hover:        color.RGBA{60, 60, 60, 64},
}

// RGB converts a configured [r, g, b] triple to an opaque color. Components
// are clamped to [0, 255].
func RGB(c [3]int) color.RGBA {
	return color.RGBA{
		R: uint8(Clamp(c[0], 0, 255)),
		G: uint8(Clamp(c[1], 0, 255)),
		B: uint8(Clamp(c[2], 0, 255)),
		A: 255,
	}
}

// WithAlpha returns c with its alpha replaced
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}

// PaletteFrom builds a palette from the colors section of the configuration
func PaletteFrom(c config.ColorsConfig) Palette {
	return Palette{
		Background:   RGB(c.Background),
		Cell:         RGB(c.Cell),
		WinLine:      RGB(c.WinLine),
		MarkX:        RGB(c.MarkX),
		MarkO:        RGB(c.MarkO),
		GridLines:    RGB(c.GridLines),
		Text:         RGB(c.Text),
		CurrentEntry: RGB(c.CurrentEntry),
		Hover:        WithAlpha(RGB(c.GridLines), hoverAlpha),
	}
}

// MarkColor returns the color a mark is drawn in. Empty cells use the text color.
func (p Palette) MarkColor(c core.Cell) color.RGBA {
	switch c {
	case core.X:
		return p.MarkX
	case core.O:
		return p.MarkO
	default:
		return p.Text
	}
}

// CellFill returns the background of a cell, highlighted when it is on the winning line
func (p Palette) CellFill(winning bool) color.RGBA {
	if winning {
		return p.WinLine
	}
	return p.Cell
}
