package server

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/aristath/bazaar/internal/events"
	"github.com/aristath/bazaar/internal/modules/market"
)

type stubSnapshot struct {
	movers market.Movers
	ok     bool
}

func (s stubSnapshot) Latest() (market.Movers, bool) { return s.movers, s.ok }

func TestParseTypes(t *testing.T) {
	assert.Equal(t, streamedTypes, parseTypes(""))
	assert.Equal(t, streamedTypes, parseTypes(" , "))
	assert.Equal(t, []events.EventType{events.MarketTick, events.SIPChanged}, parseTypes("market_tick, SIP_CHANGED"))
}

func TestTicksStream_SnapshotThenEvents(t *testing.T) {
	bus := events.NewBus(8, zerolog.Nop())
	manager := events.NewManager(bus, zerolog.Nop())
	snapshot := stubSnapshot{ok: true, movers: market.Movers{
		DateKey: "Mon Jan 01 2024",
		Bullish: []market.Mover{{Symbol: "TCS", Name: "Tata Consultancy", Price: 3384.19, ChangePct: 1.25}},
	}}

	srv := httptest.NewServer(NewTicksStreamHandler(bus, snapshot, zerolog.Nop()))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	var first events.Event
	require.NoError(t, wsjson.Read(ctx, conn, &first))
	assert.Equal(t, events.MarketTick, first.Type)
	tick, ok := first.Data.(*events.MarketTickData)
	require.True(t, ok)
	assert.Equal(t, "TCS", tick.Bullish[0].Symbol)

	// The snapshot is written after subscribing, so this event is delivered
	manager.Emit("funds", &events.SIPChangedData{FundID: "mf-1", Active: false})

	var second events.Event
	require.NoError(t, wsjson.Read(ctx, conn, &second))
	assert.Equal(t, events.SIPChanged, second.Type)
	sip, ok := second.Data.(*events.SIPChangedData)
	require.True(t, ok)
	assert.Equal(t, "mf-1", sip.FundID)
}

func TestTicksStream_UnsubscribesOnDisconnect(t *testing.T) {
	bus := events.NewBus(8, zerolog.Nop())
	snapshot := stubSnapshot{ok: true, movers: market.Movers{DateKey: "Mon Jan 01 2024"}}

	srv := httptest.NewServer(NewTicksStreamHandler(bus, snapshot, zerolog.Nop()))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)

	var first events.Event
	require.NoError(t, wsjson.Read(ctx, conn, &first))
	assert.Equal(t, 1, bus.SubscriberCount())

	_ = conn.Close(websocket.StatusNormalClosure, "")

	assert.Eventually(t, func() bool {
		return bus.SubscriberCount() == 0
	}, 3*time.Second, 20*time.Millisecond)
}
