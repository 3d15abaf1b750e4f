package portfolio

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/aristath/bazaar/internal/modules/universe"
	"github.com/aristath/bazaar/pkg/formulas"
)

// DefaultSymbols is the starter portfolio given to a user with no holdings
var DefaultSymbols = []string{"RELIANCE", "TCS", "HDFCBANK", "INFY", "TATAMOTORS", "SBIN", "ITC", "WIPRO", "BHARTIARTL", "BAJFINANCE"}

// DefaultHoldings builds the starter portfolio around today's quotes. Per
// symbol it draws the buy offset and then the quantity from rng.
func DefaultHoldings(rng *rand.Rand, quotes QuoteProvider) ([]Holding, error) {
	holdings := make([]Holding, 0, len(DefaultSymbols))
	for _, sym := range DefaultSymbols {
		c, ok := universe.BySymbol(sym)
		if !ok {
			return nil, fmt.Errorf("default symbol %s missing from catalog", sym)
		}

		q, err := quotes.Quote(sym)
		if err != nil {
			return nil, fmt.Errorf("failed to quote %s: %w", sym, err)
		}

		buyOffset := (rng.Float64() - 0.4) * q.Price * 0.15
		quantity := math.Floor(rng.Float64()*50) + 5
		holdings = append(holdings, HoldingFromCompany(c, quantity, formulas.Round2(q.Price-buyOffset)))
	}
	return holdings, nil
}
