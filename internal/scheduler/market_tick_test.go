package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/aristath/bazaar/internal/clientdata"
	"github.com/aristath/bazaar/internal/events"
	"github.com/aristath/bazaar/internal/modules/market"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRefresher struct {
	movers market.Movers
	err    error
}

func (s *stubRefresher) Refresh() (market.Movers, error) { return s.movers, s.err }

type recordingStore struct {
	table string
	key   string
	data  interface{}
	ttl   time.Duration
}

func (r *recordingStore) Store(table, key string, data interface{}, ttl time.Duration) error {
	r.table, r.key, r.data, r.ttl = table, key, data, ttl
	return nil
}

type recordingEmitter struct {
	module string
	data   []events.EventData
}

func (r *recordingEmitter) Emit(module string, data events.EventData) {
	r.module = module
	r.data = append(r.data, data)
}

func sampleMovers() market.Movers {
	return market.Movers{
		DateKey: "Mon Jan 01 2024",
		Bullish: []market.Mover{{Symbol: "TCS", Name: "Tata Consultancy", Price: 3384.19, ChangePct: 1.25}},
		Bearish: []market.Mover{{Symbol: "INFY", Name: "Infosys Limited", Price: 1520.5, ChangePct: -0.8}},
	}
}

func TestMarketTickJob_Run(t *testing.T) {
	store := &recordingStore{}
	emitter := &recordingEmitter{}
	job := NewMarketTickJob(&stubRefresher{movers: sampleMovers()}, store, emitter)

	require.NoError(t, job.Run())

	assert.Equal(t, clientdata.TableMarketMovers, store.table)
	assert.Equal(t, "Mon Jan 01 2024", store.key)
	assert.Equal(t, clientdata.TTLMarketMovers, store.ttl)

	require.Len(t, emitter.data, 1)
	assert.Equal(t, "market", emitter.module)
	tick, ok := emitter.data[0].(*events.MarketTickData)
	require.True(t, ok)
	assert.Equal(t, "TCS", tick.Bullish[0].Symbol)
	assert.Equal(t, -0.8, tick.Bearish[0].ChangePct)
}

func TestMarketTickJob_RefreshError(t *testing.T) {
	emitter := &recordingEmitter{}
	job := NewMarketTickJob(&stubRefresher{err: errors.New("boom")}, nil, emitter)
	job.SetLogger(zerolog.Nop())

	assert.Error(t, job.Run())
	assert.Empty(t, emitter.data)
}

func TestMarketTickJob_WithoutStoreOrEmitter(t *testing.T) {
	job := NewMarketTickJob(&stubRefresher{movers: sampleMovers()}, nil, nil)
	assert.Equal(t, "market_tick", job.Name())
	assert.NoError(t, job.Run())
}

func TestTickData_Empty(t *testing.T) {
	tick := TickData(market.Movers{DateKey: "Mon Jan 01 2024"})
	assert.NotNil(t, tick.Bullish)
	assert.Empty(t, tick.Bullish)
	assert.Equal(t, events.MarketTick, tick.EventType())
}
