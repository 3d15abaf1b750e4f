package derivatives

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"
)

// Book is a generated set of positions with its summary
type Book struct {
	Positions []Position `json:"positions"`
	Summary   Summary    `json:"summary"`
}

// Service draws a fresh sample book per call
type Service struct {
	now     func() time.Time
	newRand func() *rand.Rand
	log     zerolog.Logger
}

// NewService creates a derivatives service. A nil now uses time.Now.
func NewService(now func() time.Time, log zerolog.Logger) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		now: now,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
		log: log.With().Str("service", "derivatives").Logger(),
	}
}

// Book generates positions and summarizes them from one stream
func (s *Service) Book() Book {
	rng := s.newRand()
	positions := Generate(rng, s.now())
	summary := Summarize(rng, positions)

	s.log.Debug().
		Int("positions", len(positions)).
		Float64("margin_used", summary.TotalMarginUsed).
		Str("risk", string(summary.RiskLevel)).
		Msg("Generated F&O book")

	return Book{Positions: positions, Summary: summary}
}
