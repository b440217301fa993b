package core

import "fmt"

// Location is the (column, row) of a placed mark.
type Location struct {
	Col, Row int
}

// LocationOf converts a row-major board index to its location.
func LocationOf(idx int) Location {
	return Location{
		Col: idx % Size,
		Row: idx / Size,
	}
}

// IsValid checks if the location lies on the board
func (l Location) IsValid() bool {
	return l.Col >= 0 && l.Col < Size && l.Row >= 0 && l.Row < Size
}

// ToIndex converts the location back to a row-major board index
func (l Location) ToIndex() int {
	return l.Row*Size + l.Col
}

// String returns the location as "(col,row)"
func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.Col, l.Row)
}
