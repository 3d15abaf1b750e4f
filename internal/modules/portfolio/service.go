// Package portfolio provides the equity holdings store, valuation at the daily
// quote and the portfolio summary.
package portfolio

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/aristath/bazaar/internal/domain"
	"github.com/rs/zerolog"
)

// DefaultUserID owns holdings when no user is given
const DefaultUserID = "default"

// HoldingStore persists holdings per user
type HoldingStore interface {
	List(userID string) ([]Holding, error)
	Upsert(userID string, holdings []Holding) ([]Holding, error)
	Delete(userID, id string) error
}

// CompanyResolver resolves symbols against the catalog
type CompanyResolver interface {
	Get(symbol string) (domain.Company, error)
}

// AddHoldingRequest is the input for adding or replacing a holding
type AddHoldingRequest struct {
	Symbol      string  `json:"symbol"`
	Quantity    float64 `json:"quantity"`
	AvgBuyPrice float64 `json:"avg_buy_price"`
}

// Service orchestrates holdings for the equity tab.
//
// A user with no holdings is given the starter portfolio on first read; the
// starter quantities and buy prices are drawn once and then persisted, so later
// reads only move with the daily quote.
type Service struct {
	repo      HoldingStore
	enricher  *Enricher
	quotes    QuoteProvider
	companies CompanyResolver
	newRand   func() *rand.Rand
	seedMu    sync.Mutex
	log       zerolog.Logger
}

// NewService creates a portfolio service
func NewService(repo HoldingStore, quotes QuoteProvider, companies CompanyResolver, log zerolog.Logger) *Service {
	return &Service{
		repo:      repo,
		enricher:  NewEnricher(quotes),
		quotes:    quotes,
		companies: companies,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
		log: log.With().Str("service", "portfolio").Logger(),
	}
}

func normalizeUser(userID string) string {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return DefaultUserID
	}
	return userID
}

// Holdings returns the user's holdings valued at today's quote
func (s *Service) Holdings(userID string) ([]EnrichedHolding, error) {
	holdings, err := s.ensureHoldings(normalizeUser(userID))
	if err != nil {
		return nil, err
	}
	return s.enricher.Enrich(holdings)
}

// Summary totals the user's holdings
func (s *Service) Summary(userID string) (Summary, error) {
	enriched, err := s.Holdings(userID)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(enriched), nil
}

// Add stores a holding for a catalog symbol and returns it valued
func (s *Service) Add(userID string, req AddHoldingRequest) (EnrichedHolding, error) {
	userID = normalizeUser(userID)

	c, err := s.companies.Get(req.Symbol)
	if err != nil {
		return EnrichedHolding{}, err
	}

	saved, err := s.repo.Upsert(userID, []Holding{HoldingFromCompany(c, req.Quantity, req.AvgBuyPrice)})
	if err != nil {
		return EnrichedHolding{}, err
	}

	enriched, err := s.enricher.Enrich(saved)
	if err != nil {
		return EnrichedHolding{}, err
	}

	s.log.Info().Str("user_id", userID).Str("symbol", c.Symbol).Msg("Holding saved")
	return enriched[0], nil
}

// Remove deletes a holding
func (s *Service) Remove(userID, id string) error {
	return s.repo.Delete(normalizeUser(userID), id)
}

func (s *Service) ensureHoldings(userID string) ([]Holding, error) {
	holdings, err := s.repo.List(userID)
	if err != nil {
		return nil, err
	}
	if len(holdings) > 0 {
		return holdings, nil
	}

	s.seedMu.Lock()
	defer s.seedMu.Unlock()

	// another request may have seeded while we waited
	holdings, err = s.repo.List(userID)
	if err != nil {
		return nil, err
	}
	if len(holdings) > 0 {
		return holdings, nil
	}

	defaults, err := DefaultHoldings(s.newRand(), s.quotes)
	if err != nil {
		return nil, fmt.Errorf("failed to build starter portfolio: %w", err)
	}

	saved, err := s.repo.Upsert(userID, defaults)
	if err != nil {
		return nil, fmt.Errorf("failed to seed starter portfolio: %w", err)
	}

	s.log.Info().Str("user_id", userID).Int("holdings", len(saved)).Msg("Seeded starter portfolio")
	return saved, nil
}
