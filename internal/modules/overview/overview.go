// Package overview combines the equity, F&O and mutual fund books into the
// portfolio overview.
package overview

import (
	"math/rand"

	"github.com/aristath/bazaar/internal/modules/derivatives"
	"github.com/aristath/bazaar/internal/modules/funds"
	"github.com/aristath/bazaar/internal/modules/portfolio"
	"github.com/aristath/bazaar/pkg/formulas"
	"github.com/shopspring/decimal"
)

// CashBalance is the simulated uninvested cash
const CashBalance = 125000

// Allocation bucket names
const (
	BucketEquity      = "Equity"
	BucketFnO         = "F&O"
	BucketMutualFunds = "Mutual Funds"
	BucketCash        = "Cash"
)

// Slice is one bucket of the allocation chart
type Slice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Pct   float64 `json:"pct"`
}

// Overview is the whole-portfolio summary
type Overview struct {
	TotalValue    float64 `json:"totalValue"`
	TotalInvested float64 `json:"totalInvested"`
	OverallPL     float64 `json:"overallPL"`
	OverallPLPct  float64 `json:"overallPLPct"`
	TodayPL       float64 `json:"todayPL"`
	Allocation    []Slice `json:"allocation"`
}

// Compute totals the three books plus cash. Today's P&L is the one draw from
// rng. Buckets with no value are left out of the allocation.
func Compute(rng *rand.Rand, holdings []portfolio.EnrichedHolding, positions []derivatives.Position, mf []funds.Fund) Overview {
	equityValue, equityInvested := decimal.Zero, decimal.Zero
	for _, h := range holdings {
		qty := decimal.NewFromFloat(h.Quantity)
		equityValue = equityValue.Add(decimal.NewFromFloat(h.CurrentPrice).Mul(qty))
		equityInvested = equityInvested.Add(decimal.NewFromFloat(h.AvgBuyPrice).Mul(qty))
	}

	fnoValue, fnoInvested := decimal.Zero, decimal.Zero
	for _, p := range positions {
		qty := decimal.NewFromInt(int64(p.Quantity))
		fnoValue = fnoValue.Add(decimal.NewFromFloat(p.LTP).Mul(qty))
		fnoInvested = fnoInvested.Add(decimal.NewFromFloat(p.AvgPrice).Mul(qty))
	}

	mfValue, mfInvested := decimal.Zero, decimal.Zero
	for _, f := range mf {
		mfValue = mfValue.Add(decimal.NewFromFloat(f.CurrentValue))
		mfInvested = mfInvested.Add(decimal.NewFromFloat(f.InvestedValue))
	}

	cash := decimal.NewFromInt(CashBalance)
	total := equityValue.Add(fnoValue).Add(mfValue).Add(cash)
	invested := equityInvested.Add(fnoInvested).Add(mfInvested).Add(cash)
	pl := total.Sub(invested)

	totalValue := total.InexactFloat64()
	totalInvested := invested.InexactFloat64()

	var plPct float64
	if totalInvested > 0 {
		plPct = formulas.RoundPct2(pl.InexactFloat64() / totalInvested)
	}

	buckets := []struct {
		name  string
		value decimal.Decimal
	}{
		{BucketEquity, equityValue},
		{BucketFnO, fnoValue},
		{BucketMutualFunds, mfValue},
		{BucketCash, cash},
	}
	allocation := make([]Slice, 0, len(buckets))
	for _, b := range buckets {
		v := formulas.JSRound(b.value.InexactFloat64())
		if v <= 0 {
			continue
		}
		allocation = append(allocation, Slice{
			Name:  b.name,
			Value: v,
			Pct:   formulas.JSRound(v / totalValue * 100),
		})
	}

	return Overview{
		TotalValue:    formulas.Round2(totalValue),
		TotalInvested: formulas.Round2(totalInvested),
		OverallPL:     pl.Round(2).InexactFloat64(),
		OverallPLPct:  plPct,
		TodayPL:       formulas.JSRound((rng.Float64() - 0.4) * totalValue * 0.008),
		Allocation:    allocation,
	}
}
