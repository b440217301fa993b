package events

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/TicTacToe/internal/game/core"
)

func TestEventBus(t *testing.T) {
	bus := NewEventBus()

	received := false
	var receivedEvent Event

	bus.SubscribeFunc(TypeGameStarted, func(e Event) {
		received = true
		receivedEvent = e
	})

	bus.Publish(NewGameStartedEvent("test-game", true))

	assert.True(t, received, "Event handler should have been called")
	require.NotNil(t, receivedEvent)
	assert.Equal(t, TypeGameStarted, receivedEvent.Type())
	assert.Equal(t, "test-game", receivedEvent.GameID())
}

func TestEventBusMultipleFuncHandlers(t *testing.T) {
	bus := NewEventBusWithLogger(zerolog.Nop())

	handler1Called := false
	handler2Called := false

	id1 := bus.SubscribeFunc(TypeStepJumped, func(e Event) { handler1Called = true })
	id2 := bus.SubscribeFunc(TypeStepJumped, func(e Event) { handler2Called = true })

	assert.NotEqual(t, id1, id2)
	assert.Equal(t, 2, bus.GetFuncHandlerCount(TypeStepJumped))

	bus.Publish(NewStepJumpedEvent("test-game", 3, 1, EventMetadata{Step: 1, HistoryLen: 4}))

	assert.True(t, handler1Called, "Handler 1 should have been called")
	assert.True(t, handler2Called, "Handler 2 should have been called")
}

// TestSubscriber is a test implementation of Subscriber
type TestSubscriber struct {
	id              string
	interestedTypes map[string]bool
	receivedEvents  []Event
	log             *[]string
}

func (ts *TestSubscriber) ID() string {
	return ts.id
}

func (ts *TestSubscriber) HandleEvent(e Event) {
	ts.receivedEvents = append(ts.receivedEvents, e)
	if ts.log != nil {
		*ts.log = append(*ts.log, ts.id)
	}
}

func (ts *TestSubscriber) InterestedIn(eventType string) bool {
	if ts.interestedTypes == nil {
		return true
	}
	return ts.interestedTypes[eventType]
}

func TestEventBusSubscriber(t *testing.T) {
	bus := NewEventBusWithLogger(zerolog.Nop())

	subscriber := &TestSubscriber{
		id: "test-subscriber",
		interestedTypes: map[string]bool{
			TypeGameStarted: true,
			TypeGameEnded:   true,
		},
	}
	bus.Subscribe(subscriber)

	meta := EventMetadata{Step: 5, HistoryLen: 6}
	bus.Publish(NewGameStartedEvent("test-game", true))
	bus.Publish(NewMarkPlacedEvent("test-game", core.X, 6, 0, meta))
	bus.Publish(NewGameEndedEvent("test-game", core.X, core.Line{0, 3, 6}, false, meta))

	// Should only receive GameStarted and GameEnded
	require.Len(t, subscriber.receivedEvents, 2)
	assert.Equal(t, TypeGameStarted, subscriber.receivedEvents[0].Type())
	assert.Equal(t, TypeGameEnded, subscriber.receivedEvents[1].Type())

	bus.Unsubscribe(subscriber.ID())
	bus.Publish(NewGameStartedEvent("test-game", true))

	assert.Len(t, subscriber.receivedEvents, 2)
	assert.Equal(t, 0, bus.GetSubscriberCount())
}

func TestEventBusDeliveryOrder(t *testing.T) {
	bus := NewEventBusWithLogger(zerolog.Nop())

	var order []string
	for _, id := range []string{"first", "second", "third"} {
		bus.Subscribe(&TestSubscriber{id: id, log: &order})
	}

	bus.Publish(NewOrderToggledEvent("g", false, EventMetadata{}))
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestEventBusResubscribeReplaces(t *testing.T) {
	bus := NewEventBusWithLogger(zerolog.Nop())

	old := &TestSubscriber{id: "ui"}
	replacement := &TestSubscriber{id: "ui"}
	bus.Subscribe(old)
	bus.Subscribe(replacement)

	bus.Publish(NewOrderToggledEvent("g", true, EventMetadata{}))

	assert.Equal(t, 1, bus.GetSubscriberCount())
	assert.Empty(t, old.receivedEvents)
	assert.Len(t, replacement.receivedEvents, 1)
}
