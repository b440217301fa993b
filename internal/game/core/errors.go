package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrCellOccupied    = errors.New("cell occupied")
	ErrGameOver        = errors.New("game is over")
)

// GameError carries the history step and operation that produced err.
type GameError struct {
	Step      int
	Operation string
	Err       error
}

// NewGameError creates a GameError
func NewGameError(step int, operation string, err error) *GameError {
	return &GameError{Step: step, Operation: operation, Err: err}
}

func (e *GameError) Error() string {
	return fmt.Sprintf("step %d: %s: %v", e.Step, e.Operation, e.Err)
}

func (e *GameError) Unwrap() error { return e.Err }

// WrapMoveError attaches the step and target cell to a rejected placement.
func WrapMoveError(step, cellIndex int, err error) error {
	if err == nil {
		return nil
	}
	return NewGameError(step, fmt.Sprintf("place at cell %d", cellIndex), err)
}

// WrapJumpError attaches the step being viewed to a rejected jump.
func WrapJumpError(step, target int, err error) error {
	if err == nil {
		return nil
	}
	return NewGameError(step, fmt.Sprintf("jump to step %d", target), err)
}
