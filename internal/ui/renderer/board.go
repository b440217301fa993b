package renderer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/mitchelldurbincs/TicTacToe/internal/common"
	"github.com/mitchelldurbincs/TicTacToe/internal/game"
	"github.com/mitchelldurbincs/TicTacToe/internal/game/core"
	"github.com/mitchelldurbincs/TicTacToe/internal/ui/layout"
)

const (
	gridLineWidth = 2
	// markInset is the share of the cell left empty around a mark
	markInset = 0.2
)

// BoardRenderer draws the 3x3 grid and its marks.
type BoardRenderer struct {
	layout          layout.Layout
	palette         common.Palette
	defaultFont     font.Face
	showCoordinates bool
}

// NewBoardRenderer returns a renderer ready to use.
func NewBoardRenderer(l layout.Layout, p common.Palette, f font.Face) *BoardRenderer {
	return &BoardRenderer{layout: l, palette: p, defaultFont: f}
}

// SetLayout replaces the layout and palette, e.g. after a config reload.
func (br *BoardRenderer) SetLayout(l layout.Layout, p common.Palette) {
	br.layout = l
	br.palette = p
}

// SetShowCoordinates toggles the (col,row) label in each empty cell.
func (br *BoardRenderer) SetShowCoordinates(show bool) {
	br.showCoordinates = show
}

// Draw renders the snapshot's board. hover is the legal cell under the cursor, or -1.
func (br *BoardRenderer) Draw(screen *ebiten.Image, s game.Snapshot, hover int) {
	for idx := 0; idx < core.NumCells; idx++ {
		r := br.layout.CellRect(idx)

		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H),
			br.palette.CellFill(s.IsWinningCell(idx)), false)

		if idx == hover {
			vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H),
				br.palette.Hover, false)
		}

		switch s.Board[idx] {
		case core.X:
			br.drawX(screen, r)
		case core.O:
			br.drawO(screen, r)
		default:
			if br.showCoordinates && br.defaultFont != nil {
				drawCentered(screen, core.LocationOf(idx).String(), br.defaultFont, r, br.palette.GridLines)
			}
		}
	}

	br.drawGrid(screen)
}

func (br *BoardRenderer) drawGrid(screen *ebiten.Image) {
	b := br.layout.BoardRect()
	for i := 0; i <= core.Size; i++ {
		offset := float32(i * br.layout.CellSize)
		vector.StrokeLine(screen, float32(b.X)+offset, float32(b.Y), float32(b.X)+offset, float32(b.Y+b.H),
			gridLineWidth, br.palette.GridLines, false)
		vector.StrokeLine(screen, float32(b.X), float32(b.Y)+offset, float32(b.X+b.W), float32(b.Y)+offset,
			gridLineWidth, br.palette.GridLines, false)
	}
}

func (br *BoardRenderer) drawX(screen *ebiten.Image, r layout.Rect) {
	inset := float32(r.W) * markInset
	x0, y0 := float32(r.X)+inset, float32(r.Y)+inset
	x1, y1 := float32(r.X+r.W)-inset, float32(r.Y+r.H)-inset
	width := strokeWidth(r)
	c := br.palette.MarkColor(core.X)

	vector.StrokeLine(screen, x0, y0, x1, y1, width, c, true)
	vector.StrokeLine(screen, x0, y1, x1, y0, width, c, true)
}

func (br *BoardRenderer) drawO(screen *ebiten.Image, r layout.Rect) {
	cx, cy := r.Center()
	radius := float32(r.W)*(0.5-markInset)
	vector.StrokeCircle(screen, float32(cx), float32(cy), radius, strokeWidth(r), br.palette.MarkColor(core.O), true)
}

func strokeWidth(r layout.Rect) float32 {
	w := float32(r.W) / 12
	if w < 2 {
		return 2
	}
	return w
}
