package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeIndicators(t *testing.T) {
	data, err := Generate(tcs(), asOf)
	require.NoError(t, err)

	ind := ComputeIndicators(data)
	closes := data.Closes()

	require.NotNil(t, ind.SMA5)
	expectedSMA5 := (closes[25] + closes[26] + closes[27] + closes[28] + closes[29]) / 5
	assert.InDelta(t, expectedSMA5, *ind.SMA5, 1e-9)

	require.NotNil(t, ind.RSI14)
	assert.GreaterOrEqual(t, *ind.RSI14, 0.0)
	assert.LessOrEqual(t, *ind.RSI14, 100.0)

	assert.GreaterOrEqual(t, ind.DailyVolatility, 0.0)
	assert.InDelta(t, ind.DailyVolatility*15.874507866387544, ind.AnnualizedVolatility, 1e-9)
	assert.GreaterOrEqual(t, ind.MaxDrawdown, 0.0)
	assert.Less(t, ind.MaxDrawdown, 1.0)
}

func TestComputeIndicators_EmptyHistory(t *testing.T) {
	ind := ComputeIndicators(StockData{})
	assert.Nil(t, ind.RSI14)
	assert.Nil(t, ind.SMA5)
	assert.Nil(t, ind.SMA20)
	assert.Equal(t, 0, ind.Points)
	assert.Equal(t, 0.0, ind.DailyVolatility)
}
