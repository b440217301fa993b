package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/TicTacToe/internal/game/core"
	"github.com/mitchelldurbincs/TicTacToe/internal/game/events"
	"github.com/mitchelldurbincs/TicTacToe/internal/game/rules"
	"github.com/mitchelldurbincs/TicTacToe/internal/game/states"
)

// GameConfig holds configuration for creating a new game engine
type GameConfig struct {
	// GameID tags every published event. A random UUID is used when empty.
	GameID string
	// Ascending is the initial history display order.
	Ascending bool
	Logger    zerolog.Logger
	// EventBus receives an event after every mutation. Optional.
	EventBus events.Publisher
}

// Engine owns the move history, the viewed step and the display order.
// It is not safe for concurrent use.
type Engine struct {
	gameID           string
	history          *History
	currentStep      int
	displayAscending bool

	checker      *rules.WinConditionChecker
	stateMachine *states.StateMachine
	eventBus     events.Publisher
	logger       zerolog.Logger
}

// NewEngine creates an engine at the game start
func NewEngine(config GameConfig) *Engine {
	gameID := config.GameID
	if gameID == "" {
		gameID = uuid.New().String()
	}

	logger := config.Logger.With().Str("game_id", gameID).Logger()

	e := &Engine{
		gameID:           gameID,
		history:          NewHistory(),
		displayAscending: config.Ascending,
		checker:          rules.NewWinConditionChecker(logger),
		eventBus:         config.EventBus,
		logger:           logger.With().Str("component", "GameEngine").Logger(),
	}
	e.stateMachine = states.NewStateMachine(states.NewGameContext(gameID, logger), config.EventBus)

	e.logger.Info().Bool("ascending", e.displayAscending).Msg("Game engine created")
	e.publish(events.NewGameStartedEvent(gameID, e.displayAscending))

	return e
}

func (e *Engine) GameID() string { return e.gameID }

// CurrentStep returns the step being viewed
func (e *Engine) CurrentStep() int { return e.currentStep }

// HistoryLen returns the number of history records, including the starting board
func (e *Engine) HistoryLen() int { return e.history.Len() }

// DisplayAscending returns the history display order
func (e *Engine) DisplayAscending() bool { return e.displayAscending }

// CurrentBoard returns a copy of the board at the viewed step
func (e *Engine) CurrentBoard() core.Board {
	return e.history.At(e.currentStep).Board
}

// BoardAt returns a copy of the board at step
func (e *Engine) BoardAt(step int) (core.Board, error) {
	if !e.history.InRange(step) {
		return core.Board{}, fmt.Errorf("step %d outside [0,%d]: %w", step, e.history.Len()-1, core.ErrInvalidArgument)
	}
	return e.history.At(step).Board, nil
}

// NextMark returns the mark of the player to move: X on even steps, O on odd ones.
func (e *Engine) NextMark() core.Cell {
	if e.currentStep%2 == 0 {
		return core.X
	}
	return core.O
}

// PlaceMark places the next player's mark on cellIndex.
//
// Out-of-range indices fail with core.ErrInvalidArgument. Placing on an occupied
// cell (core.ErrCellOccupied) or after a win (core.ErrGameOver) is rejected as well.
// A rejected call never changes the game state.
//
// A successful call discards all records after the viewed step, appends the new
// board and views it.
func (e *Engine) PlaceMark(cellIndex int) error {
	if err := e.validatePlacement(cellIndex); err != nil {
		return e.reject(cellIndex, err)
	}

	current := e.CurrentBoard()
	mark := e.NextMark()
	truncated := e.history.TruncateAfter(e.currentStep)

	board := current.With(cellIndex, mark)
	e.history.Append(MoveRecord{
		Board:       board,
		Location:    core.LocationOf(cellIndex),
		HasLocation: true,
	})
	e.currentStep = e.history.Len() - 1

	e.logger.Debug().
		Str("mark", mark.String()).
		Int("cell", cellIndex).
		Int("step", e.currentStep).
		Int("truncated", truncated).
		Msg("Mark placed")
	e.publish(events.NewMarkPlacedEvent(e.gameID, mark, cellIndex, truncated, e.metadata()))

	outcome := e.checker.Check(board)
	if outcome.Over() {
		e.publish(events.NewGameEndedEvent(e.gameID, outcome.Winner, outcome.Line, outcome.Draw, e.metadata()))
	}
	e.syncPhase(outcome, "mark placed")

	return nil
}

func (e *Engine) validatePlacement(cellIndex int) error {
	current := e.CurrentBoard()
	if !current.InBounds(cellIndex) {
		return fmt.Errorf("cell index %d outside [0,%d]: %w", cellIndex, core.NumCells-1, core.ErrInvalidArgument)
	}
	if _, won := rules.Evaluate(current); won {
		return core.ErrGameOver
	}
	if !current[cellIndex].IsEmpty() {
		return core.ErrCellOccupied
	}
	return nil
}

func (e *Engine) reject(cellIndex int, err error) error {
	wrapped := core.WrapMoveError(e.currentStep, cellIndex, err)

	logEvent := e.logger.Debug()
	if isInvalidArgument(err) {
		logEvent = e.logger.Warn()
	}
	logEvent.Err(wrapped).Int("cell", cellIndex).Msg("Placement rejected")

	e.publish(events.NewMoveRejectedEvent(e.gameID, cellIndex, err, e.metadata()))
	return wrapped
}

// JumpTo views an earlier (or later) step. History is kept; it is only
// discarded when a mark is placed from the earlier step.
func (e *Engine) JumpTo(step int) error {
	if !e.history.InRange(step) {
		err := core.WrapJumpError(e.currentStep, step,
			fmt.Errorf("step %d outside [0,%d]: %w", step, e.history.Len()-1, core.ErrInvalidArgument))
		e.logger.Warn().Err(err).Msg("Jump rejected")
		return err
	}

	from := e.currentStep
	e.currentStep = step

	e.logger.Debug().Int("from_step", from).Int("to_step", step).Msg("Jumped to step")
	e.publish(events.NewStepJumpedEvent(e.gameID, from, step, e.metadata()))
	e.syncPhase(e.checker.Check(e.CurrentBoard()), "jumped to step")

	return nil
}

// ToggleOrder flips the history display order. Nothing else changes.
func (e *Engine) ToggleOrder() {
	e.displayAscending = !e.displayAscending

	e.logger.Debug().Bool("ascending", e.displayAscending).Msg("History order toggled")
	e.publish(events.NewOrderToggledEvent(e.gameID, e.displayAscending, e.metadata()))
}

// Phase returns the phase of the viewed position
func (e *Engine) Phase() states.GamePhase {
	return e.stateMachine.CurrentPhase()
}

// PhaseHistory returns the recorded phase transitions
func (e *Engine) PhaseHistory() []states.Transition {
	return e.stateMachine.GetHistory()
}

// Status reports the winner, a draw, or the player to move for the viewed step.
func (e *Engine) Status() Status {
	return e.statusFor(e.CurrentBoard())
}

func (e *Engine) statusFor(b core.Board) Status {
	if line, won := rules.Evaluate(b); won {
		return Status{Kind: StatusWinner, Mark: b[line[0]]}
	}
	if rules.IsFull(b) {
		return Status{Kind: StatusDraw}
	}
	return Status{Kind: StatusNext, Mark: e.NextMark()}
}

// HistoryEntries lists every record in the current display order.
func (e *Engine) HistoryEntries() []HistoryEntry {
	records := e.history.All()
	n := len(records)
	entries := make([]HistoryEntry, n)
	for step, rec := range records {
		pos := step
		if !e.displayAscending {
			pos = n - 1 - step
		}
		entries[pos] = HistoryEntry{
			Step:        step,
			IsCurrent:   step == e.currentStep,
			Location:    rec.Location,
			HasLocation: rec.HasLocation,
		}
	}
	return entries
}

// Snapshot returns everything needed to render the viewed step.
func (e *Engine) Snapshot() Snapshot {
	board := e.CurrentBoard()
	line, won := rules.Evaluate(board)

	return Snapshot{
		GameID:           e.gameID,
		Step:             e.currentStep,
		Board:            board,
		Status:           e.statusFor(board),
		WinningLine:      line,
		HasWinningLine:   won,
		DisplayAscending: e.displayAscending,
		HistoryEntries:   e.HistoryEntries(),
		LegalMoves:       rules.LegalMoves(board),
	}
}

func (e *Engine) syncPhase(outcome rules.Outcome, reason string) {
	if err := e.stateMachine.Sync(e.currentStep, outcome.Winner, outcome.Draw || rules.IsFull(e.CurrentBoard()), reason); err != nil {
		e.logger.Error().Err(err).Int("step", e.currentStep).Msg("Phase sync failed")
	}
}

func (e *Engine) metadata() events.EventMetadata {
	return events.EventMetadata{Step: e.currentStep, HistoryLen: e.history.Len()}
}

func (e *Engine) publish(event events.Event) {
	if e.eventBus != nil {
		e.eventBus.Publish(event)
	}
}

func isInvalidArgument(err error) bool {
	return errors.Is(err, core.ErrInvalidArgument)
}
