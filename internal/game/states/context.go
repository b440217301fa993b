package states

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/TicTacToe/internal/game/core"
)

// GameContext provides game-specific information to states for making decisions
type GameContext struct {
	// GameID uniquely identifies this game instance
	GameID string

	// Logger for state-specific logging
	Logger zerolog.Logger

	// Step is the history step whose position is being viewed
	Step int

	// Winner is the winning mark, core.Empty unless a line is complete
	Winner core.Cell

	// Full reports whether every cell of the viewed board is taken
	Full bool

	// PhaseEnteredAt is when the current phase was entered
	PhaseEnteredAt time.Time
}

// NewGameContext creates a new game context
func NewGameContext(gameID string, logger zerolog.Logger) *GameContext {
	return &GameContext{
		GameID:         gameID,
		Logger:         logger.With().Str("game_id", gameID).Logger(),
		PhaseEnteredAt: time.Now(),
	}
}

// Observe records the viewed position so states can validate against it.
func (gc *GameContext) Observe(step int, winner core.Cell, full bool) {
	gc.Step = step
	gc.Winner = winner
	gc.Full = full
}

// PhaseFor derives the phase the observed position belongs to.
func (gc *GameContext) PhaseFor() GamePhase {
	switch {
	case gc.Winner != core.Empty:
		return PhaseWon
	case gc.Full:
		return PhaseDrawn
	default:
		return PhasePlaying
	}
}

// TimeInPhase returns how long the machine has been in its current phase
func (gc *GameContext) TimeInPhase() time.Duration {
	return time.Since(gc.PhaseEnteredAt)
}
