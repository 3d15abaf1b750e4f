package portfolio

import (
	"fmt"

	"github.com/aristath/bazaar/internal/modules/market"
	"github.com/aristath/bazaar/pkg/formulas"
)

// QuoteProvider returns today's quote for a symbol
type QuoteProvider interface {
	Quote(symbol string) (market.Quote, error)
}

// Enricher values holdings at the daily quote
type Enricher struct {
	quotes QuoteProvider
}

// NewEnricher creates an enricher backed by quotes
func NewEnricher(quotes QuoteProvider) *Enricher {
	return &Enricher{quotes: quotes}
}

// Enrich values every holding. The whole batch is rejected if any holding fails
// validation, so no result ever carries NaN or infinite P&L.
func (e *Enricher) Enrich(holdings []Holding) ([]EnrichedHolding, error) {
	for _, h := range holdings {
		if err := Validate(h); err != nil {
			return nil, err
		}
	}

	out := make([]EnrichedHolding, 0, len(holdings))
	for _, h := range holdings {
		q, err := e.quotes.Quote(h.Symbol)
		if err != nil {
			return nil, fmt.Errorf("failed to quote %s: %w", h.Symbol, err)
		}
		out = append(out, EnrichHolding(h, q))
	}
	return out, nil
}

// EnrichHolding applies a quote to a validated holding
func EnrichHolding(h Holding, q market.Quote) EnrichedHolding {
	diff := q.Price - h.AvgBuyPrice
	return EnrichedHolding{
		Holding:      h,
		CurrentPrice: q.Price,
		Change:       q.Change,
		ChangePct:    q.ChangePct,
		PL:           formulas.Round2(diff * h.Quantity),
		PLPct:        formulas.Round2(diff / h.AvgBuyPrice * 100),
	}
}
