package renderer

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/mitchelldurbincs/TicTacToe/internal/common"
	"github.com/mitchelldurbincs/TicTacToe/internal/game"
	"github.com/mitchelldurbincs/TicTacToe/internal/ui/layout"
)

// HistoryRenderer draws the status line, the reverse button and the history list.
type HistoryRenderer struct {
	layout      layout.Layout
	palette     common.Palette
	defaultFont font.Face
}

func NewHistoryRenderer(l layout.Layout, p common.Palette, f font.Face) *HistoryRenderer {
	return &HistoryRenderer{layout: l, palette: p, defaultFont: f}
}

// SetLayout replaces the layout and palette, e.g. after a config reload.
func (hr *HistoryRenderer) SetLayout(l layout.Layout, p common.Palette) {
	hr.layout = l
	hr.palette = p
}

// Draw renders the panel for s. message, when set, replaces the status line.
func (hr *HistoryRenderer) Draw(screen *ebiten.Image, s game.Snapshot, message string) {
	if hr.defaultFont == nil {
		return
	}

	status := s.Status.String()
	statusColor := hr.palette.Text
	if message != "" {
		status = message
		statusColor = hr.palette.MarkX
	} else if s.Status.Kind == game.StatusNext || s.Status.Kind == game.StatusWinner {
		statusColor = hr.palette.MarkColor(s.Status.Mark)
	}
	x, y := hr.layout.StatusPos()
	text.Draw(screen, status, hr.defaultFont, x, y+hr.baseline(), statusColor)

	order := "Order: ascending (R)"
	if !s.DisplayAscending {
		order = "Order: descending (R)"
	}
	hr.drawButton(screen, hr.layout.ReverseButton(), order, hr.palette.GridLines, hr.palette.Text)

	for pos, entry := range s.HistoryEntries {
		fill, ink := hr.palette.GridLines, hr.palette.Text
		if entry.IsCurrent {
			fill, ink = hr.palette.CurrentEntry, hr.palette.Background
		}
		hr.drawButton(screen, hr.layout.EntryRect(pos), entry.Label(), fill, ink)
	}
}

func (hr *HistoryRenderer) drawButton(screen *ebiten.Image, r layout.Rect, label string, fill, ink color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill, false)
	drawCentered(screen, label, hr.defaultFont, r, ink)
}

func (hr *HistoryRenderer) baseline() int {
	return hr.defaultFont.Metrics().Ascent.Ceil()
}

// drawCentered draws s centered inside r.
func drawCentered(screen *ebiten.Image, s string, f font.Face, r layout.Rect, clr color.Color) {
	b := text.BoundString(f, s)
	textW := b.Max.X - b.Min.X
	textH := b.Max.Y - b.Min.Y

	x := r.X + (r.W-textW)/2 - b.Min.X
	y := r.Y + (r.H+textH)/2 - b.Max.Y
	text.Draw(screen, s, f, x, y, clr)
}
