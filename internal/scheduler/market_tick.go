package scheduler

import (
	"fmt"
	"time"

	"github.com/aristath/bazaar/internal/clientdata"
	"github.com/aristath/bazaar/internal/events"
	"github.com/aristath/bazaar/internal/modules/market"
	"github.com/rs/zerolog"
)

// MoversRefresher recomputes the market movers snapshot
type MoversRefresher interface {
	Refresh() (market.Movers, error)
}

// SnapshotStore persists the snapshot that market.Service.Restore reads at startup
type SnapshotStore interface {
	Store(table, key string, data interface{}, ttl time.Duration) error
}

// EventEmitter publishes events to stream subscribers
type EventEmitter interface {
	Emit(module string, data events.EventData)
}

// MarketTickJob refreshes the movers and publishes them as a tick
type MarketTickJob struct {
	log    zerolog.Logger
	market MoversRefresher
	store  SnapshotStore
	events EventEmitter
}

// NewMarketTickJob creates a new MarketTickJob. store and emitter may be nil.
func NewMarketTickJob(market MoversRefresher, store SnapshotStore, emitter EventEmitter) *MarketTickJob {
	return &MarketTickJob{
		log:    zerolog.Nop(),
		market: market,
		store:  store,
		events: emitter,
	}
}

// SetLogger sets the logger for the job
func (j *MarketTickJob) SetLogger(log zerolog.Logger) {
	j.log = log
}

// Name returns the job name
func (j *MarketTickJob) Name() string {
	return "market_tick"
}

// Run executes the market tick
func (j *MarketTickJob) Run() error {
	movers, err := j.market.Refresh()
	if err != nil {
		return fmt.Errorf("failed to refresh market movers: %w", err)
	}

	if j.store != nil {
		if err := j.store.Store(clientdata.TableMarketMovers, movers.DateKey, movers, clientdata.TTLMarketMovers); err != nil {
			// A missed snapshot write only affects the next restart
			j.log.Warn().Err(err).Msg("Failed to store movers snapshot")
		}
	}

	if j.events != nil {
		j.events.Emit("market", TickData(movers))
	}

	j.log.Debug().
		Str("date_key", movers.DateKey).
		Int("bullish", len(movers.Bullish)).
		Int("bearish", len(movers.Bearish)).
		Msg("Market tick published")
	return nil
}

// TickData converts a movers snapshot into a tick event payload
func TickData(movers market.Movers) *events.MarketTickData {
	return &events.MarketTickData{
		DateKey: movers.DateKey,
		Bullish: toTickMovers(movers.Bullish),
		Bearish: toTickMovers(movers.Bearish),
	}
}

func toTickMovers(in []market.Mover) []events.TickMover {
	out := make([]events.TickMover, len(in))
	for i, m := range in {
		out[i] = events.TickMover{
			Symbol:    m.Symbol,
			Name:      m.Name,
			Price:     m.Price,
			ChangePct: m.ChangePct,
		}
	}
	return out
}
