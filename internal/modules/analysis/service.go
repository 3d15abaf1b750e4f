package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aristath/bazaar/internal/clientdata"
	"github.com/aristath/bazaar/internal/clients/aiproxy"
	"github.com/aristath/bazaar/internal/domain"
	"github.com/aristath/bazaar/internal/modules/market"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// FallbackNotice is attached to results served by the local generator after the
// remote endpoint failed.
const FallbackNotice = "AI analysis unavailable, showing generated research data"

// Source identifies where a result came from
type Source string

const (
	SourceRemote    Source = "ai"
	SourceSynthetic Source = "synthetic"
)

// CompanyResolver resolves a symbol to a catalog company
type CompanyResolver interface {
	Get(symbol string) (domain.Company, error)
}

// RemoteAnalyzer is the remote AI endpoint
type RemoteAnalyzer interface {
	Configured() bool
	AnalyzeStock(ctx context.Context, req aiproxy.StockRequest) (json.RawMessage, error)
}

// Cache stores results with a TTL
type Cache interface {
	Store(table, key string, data interface{}, ttl time.Duration) error
	GetIfFresh(table, key string, dest interface{}) (bool, error)
}

// Result is a research bundle plus its provenance
type Result struct {
	StockData
	Source   Source `json:"source"`
	Fallback bool   `json:"fallback"`
	Notice   string `json:"notice,omitempty"`
}

// Service resolves analysis requests: remote endpoint first when configured,
// the local generator otherwise or on any remote failure.
type Service struct {
	companies CompanyResolver
	remote    RemoteAnalyzer
	cache     Cache
	ttl       time.Duration
	now       func() time.Time
	group     singleflight.Group
	log       zerolog.Logger
}

// NewService creates an analysis service. remote and cache may be nil.
func NewService(companies CompanyResolver, remote RemoteAnalyzer, cache Cache, ttl time.Duration, log zerolog.Logger) *Service {
	if ttl <= 0 {
		ttl = clientdata.TTLStockAnalysis
	}
	return &Service{
		companies: companies,
		remote:    remote,
		cache:     cache,
		ttl:       ttl,
		now:       time.Now,
		log:       log.With().Str("service", "analysis").Logger(),
	}
}

// Analyze returns the research bundle for symbol.
func (s *Service) Analyze(ctx context.Context, symbol string) (Result, error) {
	company, err := s.companies.Get(symbol)
	if err != nil {
		return Result{}, err
	}

	if s.remote != nil && s.remote.Configured() {
		data, err := s.analyzeRemote(ctx, company)
		if err == nil {
			return Result{StockData: data, Source: SourceRemote}, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Result{}, ctxErr
		}
		s.log.Warn().Err(err).Str("symbol", company.Symbol).Msg("Remote analysis failed, using generated data")

		data, err = s.Synthetic(company)
		if err != nil {
			return Result{}, err
		}
		return Result{StockData: data, Source: SourceSynthetic, Fallback: true, Notice: FallbackNotice}, nil
	}

	data, err := s.Synthetic(company)
	if err != nil {
		return Result{}, err
	}
	return Result{StockData: data, Source: SourceSynthetic}, nil
}

// Indicators computes technical indicators over the bundle for symbol
func (s *Service) Indicators(ctx context.Context, symbol string) (Indicators, error) {
	result, err := s.Analyze(ctx, symbol)
	if err != nil {
		return Indicators{}, err
	}
	return ComputeIndicators(result.StockData), nil
}

// Synthetic returns the generated bundle for company, memoized per day.
// Concurrent requests for the same key share one generation.
func (s *Service) Synthetic(company domain.Company) (StockData, error) {
	now := s.now()
	key := fmt.Sprintf("%s|%s|v%d", company.Symbol, market.DateKey(now), DrawOrderVersion)

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		var cached StockData
		if s.cache != nil {
			found, err := s.cache.GetIfFresh(clientdata.TableStockAnalysis, key, &cached)
			if err != nil {
				s.log.Warn().Err(err).Str("key", key).Msg("Failed to read analysis cache")
			} else if found {
				return cached, nil
			}
		}

		data, err := Generate(company, now)
		if err != nil {
			return StockData{}, err
		}

		if s.cache != nil {
			if err := s.cache.Store(clientdata.TableStockAnalysis, key, data, s.ttl); err != nil {
				s.log.Warn().Err(err).Str("key", key).Msg("Failed to write analysis cache")
			}
		}
		return data, nil
	})
	if err != nil {
		return StockData{}, err
	}
	return v.(StockData), nil
}

func (s *Service) analyzeRemote(ctx context.Context, company domain.Company) (StockData, error) {
	raw, err := s.remote.AnalyzeStock(ctx, aiproxy.StockRequest{
		Symbol:      company.Symbol,
		CompanyName: company.Name,
		Sector:      company.Sector,
		Exchange:    string(company.Exchange),
	})
	if err != nil {
		return StockData{}, err
	}

	var data StockData
	if err := json.Unmarshal(raw, &data); err != nil {
		return StockData{}, fmt.Errorf("failed to decode remote analysis: %w", err)
	}
	if data.CurrentPrice <= 0 {
		return StockData{}, errors.New("remote analysis has no current price")
	}

	data.Company = company
	if data.PriceHistory == nil {
		data.PriceHistory = []PricePoint{}
	}
	if data.QuarterlyResults == nil {
		data.QuarterlyResults = []QuarterlyResult{}
	}
	if data.News == nil {
		data.News = []NewsItem{}
	}
	return data, nil
}
