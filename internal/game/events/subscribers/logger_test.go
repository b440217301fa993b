package subscribers_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/TicTacToe/internal/game/core"
	"github.com/mitchelldurbincs/TicTacToe/internal/game/events"
	"github.com/mitchelldurbincs/TicTacToe/internal/game/events/subscribers"
)

func decodeLastLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)

	var logLine map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &logLine))
	return logLine
}

func TestLoggerSubscriber(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).With().Timestamp().Logger()

	logSub := subscribers.NewLoggerSubscriber("test-logger", logger, zerolog.InfoLevel)

	assert.Equal(t, "test-logger", logSub.ID())
	assert.True(t, logSub.InterestedIn(events.TypeGameStarted))
	assert.True(t, logSub.InterestedIn(events.TypeMarkPlaced))
	assert.True(t, logSub.InterestedIn("any.event.type"))
}

func TestLoggerSubscriberEventLogging(t *testing.T) {
	meta := events.EventMetadata{Step: 3, HistoryLen: 4}

	testCases := []struct {
		name  string
		event events.Event
		check func(t *testing.T, logLine map[string]interface{})
	}{
		{
			name:  "GameStartedEvent",
			event: events.NewGameStartedEvent("test-game-1", true),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, true, logLine["ascending"])
			},
		},
		{
			name:  "MarkPlacedEvent",
			event: events.NewMarkPlacedEvent("test-game-1", core.X, 7, 1, meta),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "X", logLine["mark"])
				assert.Equal(t, float64(7), logLine["cell"])
				assert.Equal(t, float64(1), logLine["col"])
				assert.Equal(t, float64(2), logLine["row"])
				assert.Equal(t, float64(1), logLine["truncated"])
			},
		},
		{
			name:  "MoveRejectedEvent",
			event: events.NewMoveRejectedEvent("test-game-1", 4, core.ErrCellOccupied, meta),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(4), logLine["cell"])
				assert.Equal(t, "cell occupied", logLine["reason"])
			},
		},
		{
			name:  "StepJumpedEvent",
			event: events.NewStepJumpedEvent("test-game-1", 3, 0, meta),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(3), logLine["from_step"])
				assert.Equal(t, float64(0), logLine["to_step"])
			},
		},
		{
			name:  "GameEndedEvent",
			event: events.NewGameEndedEvent("test-game-1", core.O, core.Line{2, 4, 6}, false, meta),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "O", logLine["winner"])
				assert.Equal(t, []interface{}{float64(2), float64(4), float64(6)}, logLine["line"])
			},
		},
		{
			name:  "StateTransitionEvent",
			event: events.NewStateTransitionEvent("test-game-1", "Playing", "Drawn", "mark placed"),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "Playing", logLine["from_phase"])
				assert.Equal(t, "Drawn", logLine["to_phase"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logSub := subscribers.NewLoggerSubscriber("event-logger", zerolog.New(&buf), zerolog.InfoLevel)

			logSub.HandleEvent(tc.event)

			logLine := decodeLastLine(t, &buf)
			assert.Equal(t, "Game event", logLine["message"])
			assert.Equal(t, "info", logLine["level"])
			assert.Equal(t, tc.event.Type(), logLine["event_type"])
			assert.Equal(t, "test-game-1", logLine["game_id"])
			tc.check(t, logLine)
		})
	}
}

func TestLoggerSubscriberFilter(t *testing.T) {
	logSub := subscribers.NewLoggerSubscriber("filtered", zerolog.Nop(), zerolog.DebugLevel)

	logSub.SetEventFilter([]string{events.TypeGameEnded})
	assert.True(t, logSub.InterestedIn(events.TypeGameEnded))
	assert.False(t, logSub.InterestedIn(events.TypeMarkPlaced))

	logSub.SetEventFilter(nil)
	assert.True(t, logSub.InterestedIn(events.TypeMarkPlaced))
}

func TestLoggerSubscriberDevMode(t *testing.T) {
	var buf bytes.Buffer
	logSub := subscribers.NewLoggerSubscriber("dev", zerolog.New(&buf), zerolog.WarnLevel)
	logSub.SetDevMode(true)

	logSub.HandleEvent(events.NewOrderToggledEvent("g", false, events.EventMetadata{Step: 2, HistoryLen: 5}))

	logLine := decodeLastLine(t, &buf)
	assert.Equal(t, "warn", logLine["level"])
	data, ok := logLine["event_data"].(map[string]interface{})
	require.True(t, ok, "dev mode should embed the event as JSON")
	assert.Equal(t, false, data["Ascending"])
	assert.Equal(t, "order.toggled", data["type"])
}

func TestLoggerSubscriberDevModeRejection(t *testing.T) {
	var buf bytes.Buffer
	logSub := subscribers.NewLoggerSubscriber("dev", zerolog.New(&buf), zerolog.WarnLevel)
	logSub.SetDevMode(true)

	logSub.HandleEvent(events.NewMoveRejectedEvent("g", 4, core.ErrCellOccupied, events.EventMetadata{Step: 1, HistoryLen: 2}))

	logLine := decodeLastLine(t, &buf)
	data, ok := logLine["event_data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, core.ErrCellOccupied.Error(), data["reason"])
	assert.Equal(t, float64(4), data["CellIndex"])
}
