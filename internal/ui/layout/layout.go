// Package layout maps window pixels to board cells, history entries and
// buttons, and turns pointer and key input into engine actions.
package layout

import (
	"github.com/mitchelldurbincs/TicTacToe/internal/config"
	"github.com/mitchelldurbincs/TicTacToe/internal/game/core"
)

// Rect is an axis-aligned screen rectangle
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the middle of r
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Layout positions every clickable element of the window.
//
// The history panel is a column starting at (HistoryX, HistoryY): the status
// line on row 0, the reverse button on row 1, then one row per history entry.
type Layout struct {
	CellSize int
	OffsetX  int
	OffsetY  int

	HistoryX     int
	HistoryY     int
	RowHeight    int
	ButtonWidth  int
	ButtonHeight int
}

// New builds a layout from the ui section of the configuration
func New(c config.UIConfig) Layout {
	return Layout{
		CellSize:     c.Board.CellSize,
		OffsetX:      c.Board.OffsetX,
		OffsetY:      c.Board.OffsetY,
		HistoryX:     c.History.X,
		HistoryY:     c.History.Y,
		RowHeight:    c.History.RowHeight,
		ButtonWidth:  c.History.ButtonWidth,
		ButtonHeight: c.History.ButtonHeight,
	}
}

// BoardRect covers the whole 3x3 grid
func (l Layout) BoardRect() Rect {
	return Rect{X: l.OffsetX, Y: l.OffsetY, W: l.CellSize * core.Size, H: l.CellSize * core.Size}
}

// CellRect returns the square of cell idx
func (l Layout) CellRect(idx int) Rect {
	col, row := idx%core.Size, idx/core.Size
	return Rect{
		X: l.OffsetX + col*l.CellSize,
		Y: l.OffsetY + row*l.CellSize,
		W: l.CellSize,
		H: l.CellSize,
	}
}

// CellAt returns the index of the cell under the point
func (l Layout) CellAt(x, y int) (int, bool) {
	if l.CellSize <= 0 || !l.BoardRect().Contains(x, y) {
		return -1, false
	}
	col := (x - l.OffsetX) / l.CellSize
	row := (y - l.OffsetY) / l.CellSize
	return core.Location{Col: col, Row: row}.ToIndex(), true
}

// StatusPos is the top-left corner of the status line
func (l Layout) StatusPos() (int, int) {
	return l.HistoryX, l.HistoryY
}

// ReverseButton is the rectangle of the history order toggle
func (l Layout) ReverseButton() Rect {
	return l.row(1)
}

// EntryRect is the button of the history entry at display position pos
func (l Layout) EntryRect(pos int) Rect {
	return l.row(pos + 2)
}

// EntryAt returns the display position of the history entry under the point,
// given numEntries entries
func (l Layout) EntryAt(x, y, numEntries int) (int, bool) {
	if l.RowHeight <= 0 {
		return -1, false
	}
	top := l.HistoryY + 2*l.RowHeight
	if y < top {
		return -1, false
	}
	pos := (y - top) / l.RowHeight
	if pos >= numEntries || !l.EntryRect(pos).Contains(x, y) {
		return -1, false
	}
	return pos, true
}

func (l Layout) row(n int) Rect {
	return Rect{
		X: l.HistoryX,
		Y: l.HistoryY + n*l.RowHeight,
		W: l.ButtonWidth,
		H: l.ButtonHeight,
	}
}
