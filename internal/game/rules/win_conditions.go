package rules

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/TicTacToe/internal/game/core"
)

// Lines lists every winning triple in priority order: rows top to bottom,
// columns left to right, then the main and anti diagonals.
var Lines = [8]core.Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Evaluate returns the first complete line of identical non-empty marks.
// The board is not assumed to come from legal play.
func Evaluate(b core.Board) (core.Line, bool) {
	for _, line := range Lines {
		a := b[line[0]]
		if a != core.Empty && a == b[line[1]] && a == b[line[2]] {
			return line, true
		}
	}
	return core.Line{}, false
}

// IsFull reports whether every square holds a mark.
func IsFull(b core.Board) bool {
	for _, c := range b {
		if c == core.Empty {
			return false
		}
	}
	return true
}

// Outcome describes a board position.
type Outcome struct {
	Line      core.Line
	HasWinner bool
	Winner    core.Cell
	Draw      bool
}

// Over reports whether no further marks may be placed.
func (o Outcome) Over() bool { return o.HasWinner || o.Draw }

// WinConditionChecker handles game over detection and winner determination
type WinConditionChecker struct {
	logger zerolog.Logger
}

// NewWinConditionChecker creates a new win condition checker
func NewWinConditionChecker(logger zerolog.Logger) *WinConditionChecker {
	return &WinConditionChecker{
		logger: logger.With().Str("component", "WinConditionChecker").Logger(),
	}
}

// Check evaluates b. A draw requires a full board with no winning line.
func (wc *WinConditionChecker) Check(b core.Board) Outcome {
	line, ok := Evaluate(b)
	if ok {
		winner := b[line[0]]
		wc.logger.Debug().
			Str("winner", winner.String()).
			Ints("line", line[:]).
			Msg("Winner determined")
		return Outcome{Line: line, HasWinner: true, Winner: winner}
	}

	draw := IsFull(b)
	wc.logger.Debug().Bool("draw", draw).Str("board", b.String()).Msg("No winning line")
	return Outcome{Draw: draw}
}
