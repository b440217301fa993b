package rules

import "github.com/mitchelldurbincs/TicTacToe/internal/game/core"

// LegalMoves returns the empty cells of b in index order, or nil once b has a winner.
func LegalMoves(b core.Board) []int {
	if _, won := Evaluate(b); won {
		return nil
	}
	moves := make([]int, 0, core.NumCells)
	for i, c := range b {
		if c == core.Empty {
			moves = append(moves, i)
		}
	}
	return moves
}

// GetLegalActionMask returns a per-cell mask with true for every legal placement.
func GetLegalActionMask(b core.Board) [core.NumCells]bool {
	var mask [core.NumCells]bool
	for _, idx := range LegalMoves(b) {
		mask[idx] = true
	}
	return mask
}
