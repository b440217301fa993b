package states

import "fmt"

// GamePhase is the phase of the position currently being viewed
type GamePhase int

const (
	// PhasePlaying - marks may still be placed
	PhasePlaying GamePhase = iota

	// PhaseWon - a line is complete
	PhaseWon

	// PhaseDrawn - the board is full with no line
	PhaseDrawn
)

// String returns the string representation of a GamePhase
func (p GamePhase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseWon:
		return "Won"
	case PhaseDrawn:
		return "Drawn"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true if no mark can be placed in this phase
func (p GamePhase) IsTerminal() bool {
	return p == PhaseWon || p == PhaseDrawn
}

// CanReceiveMoves returns true if the game can accept placements in this phase
func (p GamePhase) CanReceiveMoves() bool {
	return p == PhasePlaying
}

// AllowedTransitions returns the valid phases this phase can transition to.
// Finished phases lead back to Playing because the viewer can jump to an earlier step.
// Won and Drawn never follow each other: one history line ends in at most one of them.
func (p GamePhase) AllowedTransitions() []GamePhase {
	switch p {
	case PhasePlaying:
		return []GamePhase{PhaseWon, PhaseDrawn}
	case PhaseWon, PhaseDrawn:
		return []GamePhase{PhasePlaying}
	default:
		return []GamePhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p GamePhase) CanTransitionTo(target GamePhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}
