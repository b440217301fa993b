package testutil

import (
	"fmt"
	"strings"

	"github.com/mitchelldurbincs/TicTacToe/internal/game/core"
)

// BoardFromString builds a board from a row-major description such as
// "XO./.X./..X". Row separators ('/' or '|') and surrounding whitespace are ignored.
// It panics on malformed input since fixtures are fixed at compile time.
func BoardFromString(s string) core.Board {
	cleaned := strings.NewReplacer("/", "", "|", "", "\n", "", "\t", "").Replace(strings.TrimSpace(s))
	runes := []rune(cleaned)
	if len(runes) != core.NumCells {
		panic(fmt.Sprintf("board fixture %q has %d cells, want %d", s, len(runes), core.NumCells))
	}

	var b core.Board
	for i, r := range runes {
		c, err := core.ParseCell(r)
		if err != nil {
			panic(fmt.Sprintf("board fixture %q: %v", s, err))
		}
		b[i] = c
	}
	return b
}

// DrawSequence is a legal order of placements that fills the board without a winner,
// ending in XXO/OOX/XOX.
var DrawSequence = []int{0, 2, 1, 3, 5, 4, 6, 7, 8}

// ColumnWinSequence makes X complete the left column (cells 0, 3, 6) on the fifth move.
var ColumnWinSequence = []int{0, 1, 3, 4, 6}
