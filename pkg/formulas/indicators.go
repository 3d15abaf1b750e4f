package formulas

import (
	"math"

	"github.com/markcheno/go-talib"
)

// CalculateRSI calculates the Relative Strength Index
//
//	RSI = 100 - (100 / (1 + RS)), RS = average gain / average loss over length periods
//
// Returns nil if there are fewer than length+1 closes.
func CalculateRSI(closes []float64, length int) *float64 {
	if length < 2 || len(closes) < length+1 {
		return nil
	}

	rsi := talib.Rsi(closes, length)
	return lastValid(rsi)
}

// CalculateSMA calculates the simple moving average of the last length closes.
// If the series is shorter than length the mean of the whole series is returned.
func CalculateSMA(closes []float64, length int) *float64 {
	if len(closes) == 0 || length < 1 {
		return nil
	}
	if len(closes) < length {
		m := Mean(closes)
		return &m
	}

	sma := talib.Sma(closes, length)
	return lastValid(sma)
}

func lastValid(series []float64) *float64 {
	if len(series) == 0 {
		return nil
	}
	v := series[len(series)-1]
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
