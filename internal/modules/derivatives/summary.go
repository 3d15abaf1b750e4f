package derivatives

import (
	"math/rand"

	"github.com/aristath/bazaar/pkg/formulas"
	"github.com/shopspring/decimal"
)

const (
	// MarginLimit is the account's total F&O margin
	MarginLimit = 500000
	// HighRiskMargin and MediumRiskMargin are exclusive lower bounds on margin used
	HighRiskMargin   = 300000
	MediumRiskMargin = 150000
)

// RiskFor grades margin used
func RiskFor(marginUsed float64) RiskLevel {
	switch {
	case marginUsed > HighRiskMargin:
		return RiskHigh
	case marginUsed > MediumRiskMargin:
		return RiskMedium
	default:
		return RiskLow
	}
}

// Summarize totals the book. Realized and day P&L are drawn from rng in that
// order.
func Summarize(rng *rand.Rand, positions []Position) Summary {
	margin := decimal.Zero
	unrealized := decimal.Zero
	for _, p := range positions {
		margin = margin.Add(decimal.NewFromFloat(p.MarginUsed))
		unrealized = unrealized.Add(decimal.NewFromFloat(p.UnrealizedPL))
	}

	totalMargin := margin.InexactFloat64()
	return Summary{
		TotalMarginUsed:   totalMargin,
		AvailableMargin:   formulas.JSRound(MarginLimit - totalMargin),
		TotalUnrealizedPL: unrealized.Round(2).InexactFloat64(),
		RealizedPL:        formulas.JSRound((rng.Float64() - 0.3) * 25000),
		DayPL:             formulas.JSRound((rng.Float64() - 0.45) * 8000),
		RiskLevel:         RiskFor(totalMargin),
	}
}
