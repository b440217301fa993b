package states

import (
	"fmt"

	"github.com/mitchelldurbincs/TicTacToe/internal/game/core"
)

// PlayingState represents a position where marks may still be placed
type PlayingState struct{}

func NewPlayingState() State {
	return &PlayingState{}
}

func (s *PlayingState) Phase() GamePhase {
	return PhasePlaying
}

func (s *PlayingState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().Int("step", ctx.Step).Msg("Entering Playing state")
	return nil
}

func (s *PlayingState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().Int("step", ctx.Step).Msg("Exiting Playing state")
	return nil
}

func (s *PlayingState) Validate(ctx *GameContext) error {
	if ctx.Winner != core.Empty {
		return fmt.Errorf("position at step %d already has winner %s", ctx.Step, ctx.Winner)
	}
	if ctx.Full {
		return fmt.Errorf("position at step %d has no empty cell", ctx.Step)
	}
	return nil
}

// WonState represents a position with a complete line
type WonState struct{}

func NewWonState() State {
	return &WonState{}
}

func (s *WonState) Phase() GamePhase {
	return PhaseWon
}

func (s *WonState) Enter(ctx *GameContext) error {
	ctx.Logger.Info().
		Str("winner", ctx.Winner.String()).
		Int("step", ctx.Step).
		Msg("Game won")
	return nil
}

func (s *WonState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().Int("step", ctx.Step).Msg("Leaving won position")
	return nil
}

func (s *WonState) Validate(ctx *GameContext) error {
	if ctx.Winner == core.Empty {
		return fmt.Errorf("position at step %d has no winner", ctx.Step)
	}
	return nil
}

// DrawnState represents a full board without a line
type DrawnState struct{}

func NewDrawnState() State {
	return &DrawnState{}
}

func (s *DrawnState) Phase() GamePhase {
	return PhaseDrawn
}

func (s *DrawnState) Enter(ctx *GameContext) error {
	ctx.Logger.Info().Int("step", ctx.Step).Msg("Game drawn")
	return nil
}

func (s *DrawnState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().Int("step", ctx.Step).Msg("Leaving drawn position")
	return nil
}

func (s *DrawnState) Validate(ctx *GameContext) error {
	if ctx.Winner != core.Empty || !ctx.Full {
		return fmt.Errorf("position at step %d is not a draw", ctx.Step)
	}
	return nil
}
