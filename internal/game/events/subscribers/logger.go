package subscribers

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/TicTacToe/internal/game/events"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id       string
	logger   zerolog.Logger
	logLevel zerolog.Level

	// guards the fields below, which config reloads may change
	mu              sync.RWMutex
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool, len(eventTypes))
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	ls.mu.RLock()
	defer ls.mu.RUnlock()

	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	eventLogger := ls.logger.With().
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp()).
		Logger()

	var logEvent *zerolog.Event
	switch ls.logLevel {
	case zerolog.DebugLevel:
		logEvent = eventLogger.Debug()
	case zerolog.WarnLevel:
		logEvent = eventLogger.Warn()
	case zerolog.ErrorLevel:
		logEvent = eventLogger.Error()
	default:
		logEvent = eventLogger.Info()
	}

	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent.Bool("ascending", e.Ascending)

	case *events.MarkPlacedEvent:
		logEvent.
			Str("mark", e.Mark.String()).
			Int("cell", e.CellIndex).
			Int("col", e.Location.Col).
			Int("row", e.Location.Row).
			Int("step", e.Metadata.Step).
			Int("truncated", e.Truncated)

	case *events.MoveRejectedEvent:
		logEvent.
			Int("cell", e.CellIndex).
			Int("step", e.Metadata.Step).
			AnErr("reason", e.Reason)

	case *events.StepJumpedEvent:
		logEvent.
			Int("from_step", e.FromStep).
			Int("to_step", e.ToStep).
			Int("history_len", e.Metadata.HistoryLen)

	case *events.OrderToggledEvent:
		logEvent.Bool("ascending", e.Ascending)

	case *events.GameEndedEvent:
		logEvent.
			Str("winner", e.Winner.String()).
			Bool("draw", e.Draw).
			Int("final_step", e.Metadata.Step)
		if !e.Draw {
			logEvent.Ints("line", e.Line[:])
		}

	case *events.StateTransitionEvent:
		logEvent.
			Str("from_phase", e.FromPhase).
			Str("to_phase", e.ToPhase).
			Str("reason", e.Reason)
	}

	ls.mu.RLock()
	devMode := ls.devMode
	ls.mu.RUnlock()

	// In dev mode, also log the full event as JSON
	if devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Game event")
}
