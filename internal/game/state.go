package game

import (
	"fmt"

	"github.com/mitchelldurbincs/TicTacToe/internal/game/core"
)

// StatusKind tells the presentation layer which status line to show.
type StatusKind int

const (
	StatusNext StatusKind = iota
	StatusWinner
	StatusDraw
)

// Status summarises the viewed position. Mark is the winner for StatusWinner,
// the player to move for StatusNext and core.Empty for StatusDraw.
type Status struct {
	Kind StatusKind
	Mark core.Cell
}

func (s Status) String() string {
	switch s.Kind {
	case StatusWinner:
		return "Winner: " + s.Mark.String()
	case StatusDraw:
		return "Draw"
	default:
		return "Next player: " + s.Mark.String()
	}
}

// Over reports whether the viewed position accepts no more marks.
func (s Status) Over() bool { return s.Kind != StatusNext }

// HistoryEntry describes one history record for display.
type HistoryEntry struct {
	Step        int
	IsCurrent   bool
	Location    core.Location
	HasLocation bool
}

// Description is the jump button text for the entry.
func (h HistoryEntry) Description() string {
	if h.Step == 0 {
		return "Go to game start"
	}
	return fmt.Sprintf("Go to move #%d", h.Step)
}

// Label is the description followed by the placed location, if any.
func (h HistoryEntry) Label() string {
	if !h.HasLocation {
		return h.Description()
	}
	return h.Description() + " " + h.Location.String()
}

// Snapshot is everything a presentation layer needs to draw one frame.
// It shares no memory with the engine.
type Snapshot struct {
	GameID           string
	Step             int
	Board            core.Board
	Status           Status
	WinningLine      core.Line
	HasWinningLine   bool
	DisplayAscending bool
	// HistoryEntries is in ascending step order, or descending when DisplayAscending is false.
	HistoryEntries []HistoryEntry
	LegalMoves     []int
}

// IsWinningCell reports whether idx is part of the completed line.
func (s Snapshot) IsWinningCell(idx int) bool {
	return s.HasWinningLine && s.WinningLine.Contains(idx)
}
