package events

import (
	"github.com/mitchelldurbincs/TicTacToe/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted     = "game.started"
	TypeMarkPlaced      = "mark.placed"
	TypeMoveRejected    = "move.rejected"
	TypeStepJumped      = "step.jumped"
	TypeOrderToggled    = "order.toggled"
	TypeGameEnded       = "game.ended"
	TypeStateTransition = "state.transition"
)

// GameStartedEvent is published when a new game begins
type GameStartedEvent struct {
	BaseEvent
	Metadata  EventMetadata
	Ascending bool
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID string, ascending bool) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent: newBaseEvent(TypeGameStarted, gameID),
		Metadata:  EventMetadata{Step: 0, HistoryLen: 1},
		Ascending: ascending,
	}
}

// MarkPlacedEvent is published after a mark is appended to the history
type MarkPlacedEvent struct {
	BaseEvent
	Metadata  EventMetadata
	Mark      core.Cell
	CellIndex int
	Location  core.Location
	// Truncated is the number of future records discarded by this placement
	Truncated int
}

// NewMarkPlacedEvent creates a new MarkPlacedEvent
func NewMarkPlacedEvent(gameID string, mark core.Cell, cellIndex, truncated int, meta EventMetadata) *MarkPlacedEvent {
	return &MarkPlacedEvent{
		BaseEvent: newBaseEvent(TypeMarkPlaced, gameID),
		Metadata:  meta,
		Mark:      mark,
		CellIndex: cellIndex,
		Location:  core.LocationOf(cellIndex),
		Truncated: truncated,
	}
}

// MoveRejectedEvent is published when a placement is refused; the game state is unchanged
type MoveRejectedEvent struct {
	BaseEvent
	Metadata   EventMetadata
	CellIndex  int
	Reason     error  `json:"-"`
	ReasonText string `json:"reason"` // Reason's message, for JSON encoding
}

// NewMoveRejectedEvent creates a new MoveRejectedEvent
func NewMoveRejectedEvent(gameID string, cellIndex int, reason error, meta EventMetadata) *MoveRejectedEvent {
	e := &MoveRejectedEvent{
		BaseEvent: newBaseEvent(TypeMoveRejected, gameID),
		Metadata:  meta,
		CellIndex: cellIndex,
		Reason:    reason,
	}
	if reason != nil {
		e.ReasonText = reason.Error()
	}
	return e
}

// StepJumpedEvent is published when the viewed step changes through time travel
type StepJumpedEvent struct {
	BaseEvent
	Metadata EventMetadata
	FromStep int
	ToStep   int
}

// NewStepJumpedEvent creates a new StepJumpedEvent
func NewStepJumpedEvent(gameID string, from, to int, meta EventMetadata) *StepJumpedEvent {
	return &StepJumpedEvent{
		BaseEvent: newBaseEvent(TypeStepJumped, gameID),
		Metadata:  meta,
		FromStep:  from,
		ToStep:    to,
	}
}

// OrderToggledEvent is published when the history display order flips
type OrderToggledEvent struct {
	BaseEvent
	Metadata  EventMetadata
	Ascending bool
}

// NewOrderToggledEvent creates a new OrderToggledEvent
func NewOrderToggledEvent(gameID string, ascending bool, meta EventMetadata) *OrderToggledEvent {
	return &OrderToggledEvent{
		BaseEvent: newBaseEvent(TypeOrderToggled, gameID),
		Metadata:  meta,
		Ascending: ascending,
	}
}

// GameEndedEvent is published when a placement wins or fills the board
type GameEndedEvent struct {
	BaseEvent
	Metadata EventMetadata
	// Winner is core.Empty for a draw
	Winner core.Cell
	Line   core.Line
	Draw   bool
}

// NewGameEndedEvent creates a new GameEndedEvent
func NewGameEndedEvent(gameID string, winner core.Cell, line core.Line, draw bool, meta EventMetadata) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent: newBaseEvent(TypeGameEnded, gameID),
		Metadata:  meta,
		Winner:    winner,
		Line:      line,
		Draw:      draw,
	}
}

// StateTransitionEvent is published when the game state machine transitions between phases
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string
	ToPhase   string
	Reason    string
}

// NewStateTransitionEvent creates a new StateTransitionEvent
func NewStateTransitionEvent(gameID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBaseEvent(TypeStateTransition, gameID),
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}
