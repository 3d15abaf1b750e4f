package portfolio

import (
	"sort"

	"github.com/aristath/bazaar/pkg/formulas"
	"github.com/shopspring/decimal"
)

// Summarize totals enriched holdings. Sums are accumulated in decimal so
// the totals do not drift with the number of holdings.
func Summarize(holdings []EnrichedHolding) Summary {
	invested := decimal.Zero
	current := decimal.Zero
	dayChange := decimal.Zero
	bySector := make(map[string]decimal.Decimal)

	for _, h := range holdings {
		qty := decimal.NewFromFloat(h.Quantity)
		value := decimal.NewFromFloat(h.CurrentPrice).Mul(qty)

		invested = invested.Add(decimal.NewFromFloat(h.AvgBuyPrice).Mul(qty))
		current = current.Add(value)
		dayChange = dayChange.Add(decimal.NewFromFloat(h.Change).Mul(qty))
		bySector[h.Sector] = bySector[h.Sector].Add(value)
	}

	pl := current.Sub(invested)
	s := Summary{
		Holdings:      len(holdings),
		TotalInvested: invested.Round(2).InexactFloat64(),
		TotalCurrent:  current.Round(2).InexactFloat64(),
		TotalPL:       pl.Round(2).InexactFloat64(),
		DayChange:     dayChange.Round(2).InexactFloat64(),
		Sectors:       make([]SectorAllocation, 0, len(bySector)),
	}
	if invested.IsPositive() {
		s.TotalPLPct = formulas.Round2(pl.Div(invested).InexactFloat64() * 100)
	}

	for sector, value := range bySector {
		alloc := SectorAllocation{Sector: sector, Value: formulas.JSRound(value.InexactFloat64())}
		if current.IsPositive() {
			alloc.Pct = formulas.Round2(value.Div(current).InexactFloat64() * 100)
		}
		s.Sectors = append(s.Sectors, alloc)
	}
	sort.Slice(s.Sectors, func(i, j int) bool {
		if s.Sectors[i].Value != s.Sectors[j].Value {
			return s.Sectors[i].Value > s.Sectors[j].Value
		}
		return s.Sectors[i].Sector < s.Sectors[j].Sector
	})

	return s
}
