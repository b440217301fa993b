package layout

import (
	"errors"

	"github.com/mitchelldurbincs/TicTacToe/internal/game"
	"github.com/mitchelldurbincs/TicTacToe/internal/game/core"
	"github.com/mitchelldurbincs/TicTacToe/internal/game/rules"
)

// ActionKind identifies the engine operation an input maps to
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionPlace
	ActionJump
	ActionToggleOrder
)

func (k ActionKind) String() string {
	switch k {
	case ActionPlace:
		return "place"
	case ActionJump:
		return "jump"
	case ActionToggleOrder:
		return "toggle_order"
	default:
		return "none"
	}
}

// Action is one user intent. Cell is set for ActionPlace, Step for ActionJump.
type Action struct {
	Kind ActionKind
	Cell int
	Step int
}

// Apply runs the action against the engine
func (a Action) Apply(e *game.Engine) error {
	switch a.Kind {
	case ActionPlace:
		return e.PlaceMark(a.Cell)
	case ActionJump:
		return e.JumpTo(a.Step)
	case ActionToggleOrder:
		e.ToggleOrder()
	}
	return nil
}

// ActionAt resolves a click at (x, y) against the frame described by s.
// Clicks on any cell produce ActionPlace; the engine decides whether the
// placement is legal.
func (l Layout) ActionAt(x, y int, s game.Snapshot) (Action, bool) {
	if idx, ok := l.CellAt(x, y); ok {
		return Action{Kind: ActionPlace, Cell: idx}, true
	}
	if l.ReverseButton().Contains(x, y) {
		return Action{Kind: ActionToggleOrder}, true
	}
	if pos, ok := l.EntryAt(x, y, len(s.HistoryEntries)); ok {
		return Action{Kind: ActionJump, Step: s.HistoryEntries[pos].Step}, true
	}
	return Action{}, false
}

// StepAction moves the viewed step by delta, staying inside the history.
func StepAction(s game.Snapshot, delta int) (Action, bool) {
	target := s.Step + delta
	if delta == 0 || target < 0 || target >= len(s.HistoryEntries) {
		return Action{}, false
	}
	return Action{Kind: ActionJump, Step: target}, true
}

// FrameInput is the pointer and key state sampled in one frame.
type FrameInput struct {
	X, Y    int
	Click   bool
	Toggle  bool
	Back    bool
	Forward bool
	Home    bool
}

// Resolve maps one frame of input to at most one action. Actions are computed
// from s, which is stale once any action has been applied, so later inputs in
// the same frame are dropped. A click wins, then R, Left, Right and Home.
func (l Layout) Resolve(in FrameInput, s game.Snapshot) (Action, bool) {
	if in.Click {
		if a, ok := l.ActionAt(in.X, in.Y, s); ok {
			return a, true
		}
	}
	if in.Toggle {
		return Action{Kind: ActionToggleOrder}, true
	}
	if in.Back {
		if a, ok := StepAction(s, -1); ok {
			return a, true
		}
	}
	if in.Forward {
		if a, ok := StepAction(s, 1); ok {
			return a, true
		}
	}
	if in.Home && s.Step != 0 {
		return Action{Kind: ActionJump, Step: 0}, true
	}
	return Action{}, false
}

// HoverCell returns the cell under the point when a mark could be placed there.
func (l Layout) HoverCell(x, y int, s game.Snapshot) (int, bool) {
	idx, ok := l.CellAt(x, y)
	if !ok || !rules.GetLegalActionMask(s.Board)[idx] {
		return -1, false
	}
	return idx, true
}

// RejectionMessage is the short status text shown after a refused action.
func RejectionMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, core.ErrCellOccupied):
		return "That cell is taken"
	case errors.Is(err, core.ErrGameOver):
		return "The game is over"
	default:
		return "Invalid move"
	}
}
