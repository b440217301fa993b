package game

import "github.com/mitchelldurbincs/TicTacToe/internal/game/core"

// MoveRecord is one entry of the history log. The first record of every
// history has an empty board and no location.
type MoveRecord struct {
	Board       core.Board
	Location    core.Location
	HasLocation bool
}

// History is an append-only log of board snapshots that can be cut back to an
// earlier step. It always holds at least the initial record.
type History struct {
	records []MoveRecord
}

// NewHistory returns a history holding only the empty starting board.
func NewHistory() *History {
	records := make([]MoveRecord, 1, core.NumCells+1)
	records[0] = MoveRecord{Board: core.NewBoard()}
	return &History{records: records}
}

func (h *History) Len() int { return len(h.records) }

// InRange reports whether step addresses an existing record
func (h *History) InRange(step int) bool {
	return step >= 0 && step < len(h.records)
}

// At returns the record at step. Callers check InRange first.
func (h *History) At(step int) MoveRecord {
	return h.records[step]
}

// Append adds a record after the newest one.
func (h *History) Append(r MoveRecord) {
	h.records = append(h.records, r)
}

// TruncateAfter discards every record after step and returns how many were dropped.
func (h *History) TruncateAfter(step int) int {
	if step < 0 {
		step = 0
	}
	if step >= len(h.records)-1 {
		return 0
	}
	dropped := len(h.records) - (step + 1)
	h.records = h.records[:step+1]
	return dropped
}

// All returns a copy of every record in step order.
func (h *History) All() []MoveRecord {
	return append([]MoveRecord(nil), h.records...)
}
