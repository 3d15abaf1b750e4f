package events

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_JSONKeepsTypedData(t *testing.T) {
	event := &Event{
		Type:      MarketTick,
		Timestamp: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		Module:    "market",
		Data: &MarketTickData{
			DateKey: "Mon Jan 01 2024",
			Bullish: []TickMover{{Symbol: "TCS", Name: "Tata Consultancy", Price: 3384.19, ChangePct: 1.2}},
		},
	}

	raw, err := json.Marshal(event)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"type":"MARKET_TICK"`)
	assert.Contains(t, string(raw), `"date_key":"Mon Jan 01 2024"`)

	var decoded Event
	require.NoError(t, json.Unmarshal(raw, &decoded))
	tick, ok := decoded.Data.(*MarketTickData)
	require.True(t, ok, "data decodes into MarketTickData")
	assert.Equal(t, "TCS", tick.Bullish[0].Symbol)
	assert.Equal(t, event.Timestamp, decoded.Timestamp)
}

func TestEvent_UnknownTypeDecodesGeneric(t *testing.T) {
	var decoded Event
	require.NoError(t, json.Unmarshal([]byte(`{"type":"SOMETHING","module":"x","data":{"a":1}}`), &decoded))

	generic, ok := decoded.Data.(*GenericEventData)
	require.True(t, ok)
	assert.Equal(t, EventType("SOMETHING"), generic.EventType())
	assert.Equal(t, 1.0, generic.Data["a"])
}

func TestEvent_NullData(t *testing.T) {
	var decoded Event
	require.NoError(t, json.Unmarshal([]byte(`{"type":"MARKET_TICK","data":null}`), &decoded))
	assert.Nil(t, decoded.Data)
}

func TestBus_FiltersByType(t *testing.T) {
	bus := NewBus(4, zerolog.Nop())
	ticks := bus.Subscribe(MarketTick)
	all := bus.Subscribe()

	delivered := bus.Publish(Event{Type: SettingsChanged, Data: &SettingsChangedData{Key: "theme", Value: "light"}})
	assert.Equal(t, 1, delivered)
	delivered = bus.Publish(Event{Type: MarketTick, Data: &MarketTickData{}})
	assert.Equal(t, 2, delivered)

	assert.Len(t, ticks.C, 1)
	assert.Len(t, all.C, 2)
	assert.Equal(t, MarketTick, (<-ticks.C).Type)
}

func TestBus_DropsWhenFull(t *testing.T) {
	bus := NewBus(1, zerolog.Nop())
	sub := bus.Subscribe()

	assert.Equal(t, 1, bus.Publish(Event{Type: MarketTick}))
	assert.Equal(t, 0, bus.Publish(Event{Type: MarketTick}), "full buffer drops instead of blocking")
	assert.Len(t, sub.C, 1)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus(0, zerolog.Nop())
	sub := bus.Subscribe()
	require.Equal(t, 1, bus.SubscriberCount())

	bus.Unsubscribe(sub)
	bus.Unsubscribe(sub)
	bus.Unsubscribe(nil)
	assert.Equal(t, 0, bus.SubscriberCount())

	_, open := <-sub.C
	assert.False(t, open, "channel is closed")
	assert.Equal(t, 0, bus.Publish(Event{Type: MarketTick}))
}

func TestManager_Emit(t *testing.T) {
	bus := NewBus(4, zerolog.Nop())
	manager := NewManager(bus, zerolog.Nop())
	at := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	manager.now = func() time.Time { return at }

	sub := bus.Subscribe()
	manager.Emit("funds", &SIPChangedData{FundID: "mf-0", Active: false})
	manager.EmitError("scheduler", errors.New("boom"), map[string]interface{}{"job": "market_tick"})

	first := <-sub.C
	assert.Equal(t, SIPChanged, first.Type)
	assert.Equal(t, "funds", first.Module)
	assert.Equal(t, at, first.Timestamp)

	second := <-sub.C
	assert.Equal(t, ErrorOccurred, second.Type)
	data, ok := second.Data.(*ErrorEventData)
	require.True(t, ok)
	assert.Equal(t, "boom", data.Error)
}
