package market

import (
	"fmt"
	"sync"

	"github.com/aristath/bazaar/internal/clientdata"
	"github.com/aristath/bazaar/internal/domain"
	"github.com/rs/zerolog"
)

// SnapshotCache reads a cached movers snapshot
type SnapshotCache interface {
	GetIfFresh(table, key string, dest interface{}) (bool, error)
}

// CompanySource lists the catalog companies scanned for movers
type CompanySource func() []domain.Company

// Service serves quotes and keeps the latest movers snapshot for the tick stream
type Service struct {
	generator *Generator
	companies CompanySource
	log       zerolog.Logger

	mu     sync.RWMutex
	latest *Movers
}

// NewService creates a market service
func NewService(generator *Generator, companies CompanySource, log zerolog.Logger) *Service {
	return &Service{
		generator: generator,
		companies: companies,
		log:       log.With().Str("service", "market").Logger(),
	}
}

// Quote returns the quote for symbol on dateKey, today when dateKey is empty
func (s *Service) Quote(symbol, dateKey string) (Quote, error) {
	return s.generator.QuoteOn(symbol, dateKey)
}

// Movers computes today's movers
func (s *Service) Movers() (Movers, error) {
	movers, err := ComputeMovers(s.generator, s.companies())
	if err != nil {
		return Movers{}, err
	}
	movers.DateKey = s.generator.Today()
	return movers, nil
}

// Refresh recomputes the movers and stores them as the latest snapshot
func (s *Service) Refresh() (Movers, error) {
	movers, err := s.Movers()
	if err != nil {
		return Movers{}, err
	}

	s.mu.Lock()
	s.latest = &movers
	s.mu.Unlock()

	s.log.Debug().
		Int("bullish", len(movers.Bullish)).
		Int("bearish", len(movers.Bearish)).
		Msg("Refreshed market movers")
	return movers, nil
}

// Latest returns the last refreshed snapshot, or false if none exists yet
func (s *Service) Latest() (Movers, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest == nil {
		return Movers{}, false
	}
	return *s.latest, true
}

// Restore loads today's cached movers snapshot as the latest one, so stream
// subscribers get data before the first tick after a restart. It reports
// whether a fresh snapshot was found.
func (s *Service) Restore(cache SnapshotCache) (bool, error) {
	today := s.generator.Today()

	var movers Movers
	found, err := cache.GetIfFresh(clientdata.TableMarketMovers, today, &movers)
	if err != nil {
		return false, fmt.Errorf("failed to read movers snapshot for %s: %w", today, err)
	}
	if !found {
		return false, nil
	}

	s.mu.Lock()
	s.latest = &movers
	s.mu.Unlock()

	s.log.Debug().Str("date_key", today).Msg("Restored movers snapshot")
	return true, nil
}
