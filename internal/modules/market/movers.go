package market

import (
	"fmt"
	"sort"

	"github.com/aristath/bazaar/internal/domain"
)

// MoversUniverseSize is how many catalog companies are scanned for movers, and
// MoversLimit the number kept per side.
const (
	MoversUniverseSize = 20
	MoversLimit        = 5
)

// Mover is one row of the market movers board
type Mover struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ChangePct float64 `json:"changePct"`
}

// Movers splits the scanned companies into gainers and losers
type Movers struct {
	DateKey string  `json:"date_key"`
	Bullish []Mover `json:"bullish"`
	Bearish []Mover `json:"bearish"`
}

// QuoteSource supplies a quote for a symbol
type QuoteSource interface {
	Quote(symbol string) (Quote, error)
}

// ComputeMovers quotes the first MoversUniverseSize companies. Non-negative
// changes are bullish (sorted by change descending), the rest bearish (sorted
// ascending); each side keeps MoversLimit entries.
func ComputeMovers(quotes QuoteSource, companies []domain.Company) (Movers, error) {
	if len(companies) > MoversUniverseSize {
		companies = companies[:MoversUniverseSize]
	}

	bullish := make([]Mover, 0, len(companies))
	bearish := make([]Mover, 0, len(companies))
	for _, c := range companies {
		q, err := quotes.Quote(c.Symbol)
		if err != nil {
			return Movers{}, fmt.Errorf("failed to quote %s: %w", c.Symbol, err)
		}
		m := Mover{Symbol: c.Symbol, Name: c.ShortName(), Price: q.Price, ChangePct: q.ChangePct}
		if q.ChangePct >= 0 {
			bullish = append(bullish, m)
		} else {
			bearish = append(bearish, m)
		}
	}

	sort.SliceStable(bullish, func(i, j int) bool { return bullish[i].ChangePct > bullish[j].ChangePct })
	sort.SliceStable(bearish, func(i, j int) bool { return bearish[i].ChangePct < bearish[j].ChangePct })

	if len(bullish) > MoversLimit {
		bullish = bullish[:MoversLimit]
	}
	if len(bearish) > MoversLimit {
		bearish = bearish[:MoversLimit]
	}

	return Movers{Bullish: bullish, Bearish: bearish}, nil
}
