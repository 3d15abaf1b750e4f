package funds

import (
	"math/rand"

	"github.com/aristath/bazaar/pkg/formulas"
	"github.com/shopspring/decimal"
)

var categoryOrder = []Category{CategoryEquity, CategoryDebt, CategoryHybrid}

// Summarize totals funds. Today's change is the one draw from rng.
func Summarize(rng *rand.Rand, funds []Fund) Summary {
	value := decimal.Zero
	invested := decimal.Zero
	sip := decimal.Zero
	active := 0
	byCategory := make(map[Category]decimal.Decimal)

	for _, f := range funds {
		current := decimal.NewFromFloat(f.CurrentValue)
		value = value.Add(current)
		invested = invested.Add(decimal.NewFromFloat(f.InvestedValue))
		byCategory[f.Category] = byCategory[f.Category].Add(current)
		if f.SIPActive {
			active++
			sip = sip.Add(decimal.NewFromFloat(f.SIPAmount))
		}
	}

	totalValue := value.InexactFloat64()
	totalInvested := invested.InexactFloat64()
	returns := value.Sub(invested).InexactFloat64()

	var returnsPct float64
	if totalInvested > 0 {
		returnsPct = formulas.RoundPct2(returns / totalInvested)
	}

	categories := make([]CategoryAllocation, 0, len(byCategory))
	for _, c := range categoryOrder {
		if v, ok := byCategory[c]; ok {
			categories = append(categories, CategoryAllocation{Category: c, Value: v.InexactFloat64()})
		}
	}

	return Summary{
		TotalValue:      totalValue,
		TotalInvested:   totalInvested,
		TotalReturns:    returns,
		TotalReturnsPct: returnsPct,
		TodayChange:     formulas.JSRound((rng.Float64() - 0.45) * totalValue * 0.01),
		ActiveSIPs:      active,
		MonthlySIP:      sip.InexactFloat64(),
		Categories:      categories,
	}
}
