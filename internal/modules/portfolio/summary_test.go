package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	holdings := []EnrichedHolding{
		{Holding: Holding{Symbol: "A", Sector: "IT", Quantity: 10, AvgBuyPrice: 100}, CurrentPrice: 120, Change: 1.5},
		{Holding: Holding{Symbol: "B", Sector: "Banking", Quantity: 5, AvgBuyPrice: 200}, CurrentPrice: 180, Change: -2},
		{Holding: Holding{Symbol: "C", Sector: "IT", Quantity: 2, AvgBuyPrice: 50}, CurrentPrice: 55, Change: 0.25},
	}

	s := Summarize(holdings)
	assert.Equal(t, 3, s.Holdings)
	assert.Equal(t, 2100.0, s.TotalInvested)
	assert.Equal(t, 2210.0, s.TotalCurrent)
	assert.Equal(t, 110.0, s.TotalPL)
	assert.Equal(t, 5.24, s.TotalPLPct)
	assert.Equal(t, 5.5, s.DayChange)

	require.Len(t, s.Sectors, 2)
	assert.Equal(t, SectorAllocation{Sector: "IT", Value: 1310, Pct: 59.28}, s.Sectors[0])
	assert.Equal(t, SectorAllocation{Sector: "Banking", Value: 900, Pct: 40.72}, s.Sectors[1])
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.Holdings)
	assert.Equal(t, 0.0, s.TotalPLPct)
	assert.NotNil(t, s.Sectors)
	assert.Empty(t, s.Sectors)
}

func TestSummarize_DecimalSums(t *testing.T) {
	holdings := make([]EnrichedHolding, 0, 10)
	for i := 0; i < 10; i++ {
		holdings = append(holdings, EnrichedHolding{
			Holding:      Holding{Symbol: "X", Sector: "S", Quantity: 1, AvgBuyPrice: 0.1},
			CurrentPrice: 0.2,
		})
	}

	s := Summarize(holdings)
	assert.Equal(t, 1.0, s.TotalInvested)
	assert.Equal(t, 2.0, s.TotalCurrent)
	assert.Equal(t, 100.0, s.TotalPLPct)
}
