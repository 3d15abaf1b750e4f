// Package universe provides the company catalog, search and the trending list.
package universe

import (
	"fmt"
	"strings"

	"github.com/aristath/bazaar/internal/domain"
	"github.com/rs/zerolog"
)

// FeaturedLister supplies curated stocks for the trending list
type FeaturedLister interface {
	List() ([]FeaturedStock, error)
}

// Service answers catalog queries
type Service struct {
	featured FeaturedLister
	log      zerolog.Logger
}

// NewService creates a universe service. featured may be nil.
func NewService(featured FeaturedLister, log zerolog.Logger) *Service {
	return &Service{
		featured: featured,
		log:      log.With().Str("service", "universe").Logger(),
	}
}

// Search delegates to the catalog search
func (s *Service) Search(query string) []domain.Company {
	return Search(strings.TrimSpace(query))
}

// Get resolves a symbol (case-insensitive) to a company
func (s *Service) Get(symbol string) (domain.Company, error) {
	c, ok := BySymbol(strings.ToUpper(strings.TrimSpace(symbol)))
	if !ok {
		return domain.Company{}, fmt.Errorf("company %q: %w", symbol, domain.ErrNotFound)
	}
	return c, nil
}

// Trending returns the featured stocks if any are configured, otherwise the
// default trending symbols. A failing featured store degrades to the default.
func (s *Service) Trending() []domain.Company {
	if s.featured != nil {
		featured, err := s.featured.List()
		if err != nil {
			s.log.Warn().Err(err).Msg("Failed to load featured stocks, using default trending list")
		} else if len(featured) > 0 {
			out := make([]domain.Company, 0, len(featured))
			for _, f := range featured {
				out = append(out, f.Company)
			}
			return out
		}
	}

	out := make([]domain.Company, 0, len(trendingSymbols))
	for _, sym := range trendingSymbols {
		if c, ok := BySymbol(sym); ok {
			out = append(out, c)
		}
	}
	return out
}
