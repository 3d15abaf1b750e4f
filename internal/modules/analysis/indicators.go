package analysis

import (
	"github.com/aristath/bazaar/pkg/formulas"
)

// Indicators summarises the price history of a research bundle
type Indicators struct {
	Symbol               string   `json:"symbol"`
	RSI14                *float64 `json:"rsi_14"`
	SMA5                 *float64 `json:"sma_5"`
	SMA20                *float64 `json:"sma_20"`
	MeanDailyReturn      float64  `json:"mean_daily_return"`
	DailyVolatility      float64  `json:"daily_volatility"`
	AnnualizedVolatility float64  `json:"annualized_volatility"`
	MaxDrawdown          float64  `json:"max_drawdown"`
	Points               int      `json:"points"`
}

// ComputeIndicators derives technical indicators from data.PriceHistory
func ComputeIndicators(data StockData) Indicators {
	closes := data.Closes()
	returns := formulas.CalculateReturns(closes)

	return Indicators{
		Symbol:               data.Company.Symbol,
		RSI14:                formulas.CalculateRSI(closes, 14),
		SMA5:                 formulas.CalculateSMA(closes, 5),
		SMA20:                formulas.CalculateSMA(closes, 20),
		MeanDailyReturn:      formulas.Mean(returns),
		DailyVolatility:      formulas.StdDev(returns),
		AnnualizedVolatility: formulas.AnnualizedVolatility(returns),
		MaxDrawdown:          formulas.MaxDrawdown(closes),
		Points:               len(closes),
	}
}
