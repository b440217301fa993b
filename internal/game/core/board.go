package core

import "strings"

// Cell is the content of a single square.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

const (
	// Size is the side length of the board.
	Size = 3
	// NumCells is the number of squares on the board.
	NumCells = Size * Size
)

func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

func (c Cell) IsEmpty() bool { return c == Empty }

// Board is a 3x3 board stored row-major: index = row*3 + col.
// It is a value type, so assigning or passing a Board copies it.
type Board [NumCells]Cell

// Line is a triple of cell indices.
type Line [3]int

// Contains reports whether idx is one of the line's cells.
func (l Line) Contains(idx int) bool {
	return l[0] == idx || l[1] == idx || l[2] == idx
}

func NewBoard() Board { return Board{} }

func (b Board) Idx(col, row int) int { return row*Size + col }

// InBounds checks if idx addresses a square on the board
func (b Board) InBounds(idx int) bool {
	return idx >= 0 && idx < NumCells
}

// With returns a copy of the board with idx set to mark.
func (b Board) With(idx int, mark Cell) Board {
	b[idx] = mark
	return b
}

// Count returns the number of squares holding mark.
func (b Board) Count(mark Cell) int {
	n := 0
	for _, c := range b {
		if c == mark {
			n++
		}
	}
	return n
}

// String renders the board as three rows separated by '/', using '.' for empty squares.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(NumCells + Size - 1)
	for i, c := range b {
		if i > 0 && i%Size == 0 {
			sb.WriteByte('/')
		}
		if c == Empty {
			sb.WriteByte('.')
		} else {
			sb.WriteString(c.String())
		}
	}
	return sb.String()
}
