package formulas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSRound(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{2.5, 3},
		{-2.5, -2},
		{-2.6, -3},
		{2.4999, 2},
		{0, 0},
		{-0.5, 0},
		{1234567.5, 1234568},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, JSRound(tt.in), "JSRound(%v)", tt.in)
	}

	assert.True(t, math.IsNaN(JSRound(math.NaN())))
	assert.True(t, math.IsInf(JSRound(math.Inf(1)), 1))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1234.57, Round2(1234.5678))
	assert.Equal(t, -12.34, Round2(-12.3449))
	assert.Equal(t, 200.0, Round2(200.001))
	assert.Equal(t, 20.0, Round2((120.0-100.0)/100.0*100))
}

func TestRoundPct2(t *testing.T) {
	assert.Equal(t, 2.04, RoundPct2(2.0/98.0))
	assert.Equal(t, -1.5, RoundPct2(-0.015))
}

func TestToFixed(t *testing.T) {
	assert.Equal(t, "0.75", ToFixed(0.75, 2))
	assert.Equal(t, "12.3", ToFixed(12.34, 1))
	assert.Equal(t, "5.00", ToFixed(5, 2))
	assert.Equal(t, "-0.75", ToFixed(-0.75, 2))
}

func TestToFixed_MatchesJavaScriptOnTies(t *testing.T) {
	tests := []struct {
		x      float64
		digits int
		want   string
	}{
		{12.25, 1, "12.3"}, // exact binary tie, strconv gives "12.2"
		{0.125, 2, "0.13"},
		{2.5, 0, "3"},
		{0.5, 0, "1"},
		{-12.25, 1, "-12.3"},
		{0.0625, 3, "0.063"},
		{1.005, 2, "1.00"}, // stored just below the tie
		{8.345, 2, "8.34"},
		{1.45, 1, "1.4"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToFixed(tt.x, tt.digits), "%v.toFixed(%d)", tt.x, tt.digits)
	}
}

func TestStats(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.InDelta(t, 2.0, Mean([]float64{1, 2, 3}), 1e-12)
	assert.Equal(t, 0.0, StdDev([]float64{5}))
	assert.InDelta(t, 1.0, StdDev([]float64{1, 2, 3}), 1e-12)

	returns := CalculateReturns([]float64{100, 110, 99})
	require.Len(t, returns, 2)
	assert.InDelta(t, 0.10, returns[0], 1e-12)
	assert.InDelta(t, -0.10, returns[1], 1e-12)
	assert.Empty(t, CalculateReturns([]float64{100}))

	assert.InDelta(t, 0.10, MaxDrawdown([]float64{100, 110, 99, 105}), 1e-12)
	assert.Equal(t, 0.0, MaxDrawdown(nil))
}

func TestCalculateRSI(t *testing.T) {
	rising := make([]float64, 30)
	for i := range rising {
		rising[i] = 100 + float64(i)
	}

	rsi := CalculateRSI(rising, 14)
	require.NotNil(t, rsi)
	assert.InDelta(t, 100.0, *rsi, 1e-9)

	assert.Nil(t, CalculateRSI(rising[:10], 14))
}

func TestCalculateSMA(t *testing.T) {
	closes := []float64{1, 2, 3, 4, 5, 6}

	sma := CalculateSMA(closes, 3)
	require.NotNil(t, sma)
	assert.InDelta(t, 5.0, *sma, 1e-12)

	short := CalculateSMA(closes, 20)
	require.NotNil(t, short)
	assert.InDelta(t, 3.5, *short, 1e-12)

	assert.Nil(t, CalculateSMA(nil, 3))
}
