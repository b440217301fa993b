package states

import (
	"fmt"
	"time"

	"github.com/mitchelldurbincs/TicTacToe/internal/game/core"
	"github.com/mitchelldurbincs/TicTacToe/internal/game/events"
)

// State represents a game phase with lifecycle callbacks
type State interface {
	// Phase returns the GamePhase this state represents
	Phase() GamePhase

	// Enter is called when transitioning into this state
	Enter(ctx *GameContext) error

	// Exit is called when transitioning out of this state
	Exit(ctx *GameContext) error

	// Validate checks if the state is valid given the context
	Validate(ctx *GameContext) error
}

// Transition represents a state transition in the history
type Transition struct {
	From      GamePhase
	To        GamePhase
	Step      int
	Timestamp time.Time
	Reason    string
}

// StateMachine tracks the phase of the viewed position. It is not safe for
// concurrent use; the owning engine serialises all calls.
type StateMachine struct {
	currentPhase   GamePhase
	states         map[GamePhase]State
	context        *GameContext
	history        []Transition
	maxHistorySize int
	publisher      events.Publisher
}

// NewStateMachine creates a new state machine starting in PhasePlaying.
// publisher may be nil.
func NewStateMachine(ctx *GameContext, publisher events.Publisher) *StateMachine {
	sm := &StateMachine{
		currentPhase:   PhasePlaying,
		states:         make(map[GamePhase]State),
		context:        ctx,
		history:        make([]Transition, 0, 16),
		maxHistorySize: 100,
		publisher:      publisher,
	}

	sm.RegisterState(NewPlayingState())
	sm.RegisterState(NewWonState())
	sm.RegisterState(NewDrawnState())

	return sm
}

// RegisterState registers a state implementation
func (sm *StateMachine) RegisterState(state State) {
	sm.states[state.Phase()] = state
}

// CurrentPhase returns the current game phase
func (sm *StateMachine) CurrentPhase() GamePhase {
	return sm.currentPhase
}

// Sync observes the viewed position and transitions to its phase if it differs from the current one.
func (sm *StateMachine) Sync(step int, winner core.Cell, full bool, reason string) error {
	sm.context.Observe(step, winner, full)
	target := sm.context.PhaseFor()
	if target == sm.currentPhase {
		return nil
	}
	return sm.TransitionTo(target, reason)
}

// TransitionTo attempts to transition to the specified phase
func (sm *StateMachine) TransitionTo(targetPhase GamePhase, reason string) error {
	if !sm.currentPhase.CanTransitionTo(targetPhase) {
		return fmt.Errorf("invalid transition from %s to %s", sm.currentPhase, targetPhase)
	}

	currentState, hasCurrentState := sm.states[sm.currentPhase]
	targetState, hasTargetState := sm.states[targetPhase]
	if !hasTargetState {
		return fmt.Errorf("no state implementation for phase %s", targetPhase)
	}

	if err := targetState.Validate(sm.context); err != nil {
		return fmt.Errorf("target state validation failed: %w", err)
	}

	if hasCurrentState {
		if err := currentState.Exit(sm.context); err != nil {
			sm.context.Logger.Error().
				Err(err).
				Str("from_phase", sm.currentPhase.String()).
				Str("to_phase", targetPhase.String()).
				Msg("Error exiting state")
		}
	}

	previousPhase := sm.currentPhase
	timeInPrevious := sm.context.TimeInPhase()
	sm.currentPhase = targetPhase

	if err := targetState.Enter(sm.context); err != nil {
		sm.currentPhase = previousPhase
		return fmt.Errorf("failed to enter state %s: %w", targetPhase, err)
	}

	sm.context.PhaseEnteredAt = time.Now()
	sm.addToHistory(Transition{
		From:      previousPhase,
		To:        targetPhase,
		Step:      sm.context.Step,
		Timestamp: sm.context.PhaseEnteredAt,
		Reason:    reason,
	})

	if sm.publisher != nil {
		sm.publisher.Publish(events.NewStateTransitionEvent(
			sm.context.GameID,
			previousPhase.String(),
			targetPhase.String(),
			reason,
		))
	}

	sm.context.Logger.Debug().
		Str("from_phase", previousPhase.String()).
		Str("to_phase", targetPhase.String()).
		Str("reason", reason).
		Dur("time_in_previous_phase", timeInPrevious).
		Msg("State transition completed")

	return nil
}

// addToHistory adds a transition to the history, maintaining max size
func (sm *StateMachine) addToHistory(transition Transition) {
	sm.history = append(sm.history, transition)
	if len(sm.history) > sm.maxHistorySize {
		sm.history = sm.history[len(sm.history)-sm.maxHistorySize:]
	}
}

// GetHistory returns a copy of the transition history
func (sm *StateMachine) GetHistory() []Transition {
	history := make([]Transition, len(sm.history))
	copy(history, sm.history)
	return history
}
