package overview

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/aristath/bazaar/internal/modules/derivatives"
	"github.com/aristath/bazaar/internal/modules/funds"
	"github.com/aristath/bazaar/internal/modules/portfolio"
	"github.com/rs/zerolog"
)

// EquitySource supplies a user's valued holdings
type EquitySource interface {
	Holdings(userID string) ([]portfolio.EnrichedHolding, error)
}

// DerivativesSource supplies the F&O book
type DerivativesSource interface {
	Book() derivatives.Book
}

// FundsSource supplies the mutual fund holdings
type FundsSource interface {
	Funds() ([]funds.Fund, error)
}

// Service builds the overview from the three books
type Service struct {
	equity      EquitySource
	derivatives DerivativesSource
	funds       FundsSource
	newRand     func() *rand.Rand
	log         zerolog.Logger
}

// NewService creates an overview service
func NewService(equity EquitySource, fno DerivativesSource, mf FundsSource, log zerolog.Logger) *Service {
	return &Service{
		equity:      equity,
		derivatives: fno,
		funds:       mf,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
		log: log.With().Str("service", "overview").Logger(),
	}
}

// Overview combines the user's books
func (s *Service) Overview(userID string) (Overview, error) {
	holdings, err := s.equity.Holdings(userID)
	if err != nil {
		return Overview{}, fmt.Errorf("failed to load equity holdings: %w", err)
	}

	mf, err := s.funds.Funds()
	if err != nil {
		return Overview{}, fmt.Errorf("failed to load funds: %w", err)
	}

	out := Compute(s.newRand(), holdings, s.derivatives.Book().Positions, mf)
	s.log.Debug().Float64("total_value", out.TotalValue).Int("buckets", len(out.Allocation)).Msg("Built overview")
	return out, nil
}
