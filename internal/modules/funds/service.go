package funds

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
)

// SIPStore persists SIP state overrides by fund id
type SIPStore interface {
	SIPOverrides() (map[string]bool, error)
	SetSIPActive(fundID string, active bool) error
}

// Service serves the mutual funds tab. SIP state is the only mutable part.
type Service struct {
	sips    SIPStore
	now     func() time.Time
	newRand func() *rand.Rand
	log     zerolog.Logger
}

// NewService creates a funds service. A nil now uses time.Now.
func NewService(sips SIPStore, now func() time.Time, log zerolog.Logger) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		sips: sips,
		now:  now,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
		log: log.With().Str("service", "funds").Logger(),
	}
}

// Funds returns the holdings with stored SIP overrides applied
func (s *Service) Funds() ([]Fund, error) {
	return s.generate(s.newRand())
}

// Summary totals the holdings
func (s *Service) Summary() (Summary, error) {
	rng := s.newRand()
	funds, err := s.generate(rng)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(rng, funds), nil
}

// NavHistory simulates the NAV history of one fund
func (s *Service) NavHistory(id string, months int) ([]NavPoint, error) {
	nav, err := NAVFor(id)
	if err != nil {
		return nil, err
	}
	return NavHistory(s.newRand(), nav, months, s.now())
}

// SetSIP starts or pauses the SIP of a fund and returns the updated fund
func (s *Service) SetSIP(id string, active bool) (Fund, error) {
	sc, err := schemeByID(id)
	if err != nil {
		return Fund{}, err
	}
	if sc.sipAmount <= 0 {
		return Fund{}, fmt.Errorf("fund %s: %w", id, ErrNoSIPPlan)
	}

	if err := s.sips.SetSIPActive(id, active); err != nil {
		return Fund{}, fmt.Errorf("failed to store SIP state for %s: %w", id, err)
	}

	s.log.Info().Str("fund_id", id).Bool("active", active).Msg("SIP state changed")

	funds, err := s.Funds()
	if err != nil {
		return Fund{}, err
	}
	for _, f := range funds {
		if f.ID == id {
			return f, nil
		}
	}
	return Fund{}, fmt.Errorf("fund %s vanished after update", id)
}

func (s *Service) generate(rng *rand.Rand) ([]Fund, error) {
	overrides, err := s.sips.SIPOverrides()
	if err != nil {
		return nil, fmt.Errorf("failed to load SIP state: %w", err)
	}
	return GenerateWithSIP(rng, s.now(), overrides), nil
}
