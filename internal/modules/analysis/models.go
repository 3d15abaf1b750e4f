// Package analysis builds the stock research bundle shown on the detail page:
// price history, quarterly results, news, sentiment, the buy/sell/hold split and
// a trading decision.
package analysis

import (
	"errors"

	"github.com/aristath/bazaar/internal/domain"
)

// ErrInvalidCompany is returned when a company lacks a symbol or a name
var ErrInvalidCompany = errors.New("company symbol and name are required")

// Action is the single-word trading decision
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
	ActionHold Action = "HOLD"
)

// Direction summarises the average news sentiment
type Direction string

const (
	DirectionPositive Direction = "POSITIVE"
	DirectionNeutral  Direction = "NEUTRAL"
	DirectionNegative Direction = "NEGATIVE"
)

// Trend describes how sentiment is moving
type Trend string

const (
	TrendStrengthening Trend = "STRENGTHENING"
	TrendStable        Trend = "STABLE"
	TrendWeakening     Trend = "WEAKENING"
)

// NewsSentiment tags a single headline
type NewsSentiment string

const (
	NewsPositive NewsSentiment = "positive"
	NewsNeutral  NewsSentiment = "neutral"
	NewsNegative NewsSentiment = "negative"
)

// PricePoint is one day of the price history
type PricePoint struct {
	Time  string  `json:"time" msgpack:"time"`
	Price float64 `json:"price" msgpack:"price"`
}

// QuarterlyResult holds revenue and profit in crore plus EPS
type QuarterlyResult struct {
	Quarter string  `json:"quarter" msgpack:"quarter"`
	Revenue float64 `json:"revenue" msgpack:"revenue"`
	Profit  float64 `json:"profit" msgpack:"profit"`
	EPS     float64 `json:"eps" msgpack:"eps"`
}

// NewsItem is a headline with its source and age
type NewsItem struct {
	Title     string        `json:"title" msgpack:"title"`
	Source    string        `json:"source" msgpack:"source"`
	Time      string        `json:"time" msgpack:"time"`
	Sentiment NewsSentiment `json:"sentiment" msgpack:"sentiment"`
}

// Sentiment is the aggregate news sentiment
type Sentiment struct {
	AvgSentiment float64   `json:"avg_sentiment" msgpack:"avg_sentiment"`
	Confidence   float64   `json:"confidence" msgpack:"confidence"`
	Direction    Direction `json:"direction" msgpack:"direction"`
	Trend        Trend     `json:"trend" msgpack:"trend"`
}

// AIAnalysis is the probabilistic research summary
type AIAnalysis struct {
	NewsSummary   []string `json:"newsSummary" msgpack:"news_summary"`
	Insight       string   `json:"insight" msgpack:"insight"`
	BuyPct        int      `json:"buyPct" msgpack:"buy_pct"`
	SellPct       int      `json:"sellPct" msgpack:"sell_pct"`
	HoldPct       int      `json:"holdPct" msgpack:"hold_pct"`
	RiskScore     string   `json:"riskScore" msgpack:"risk_score"`
	HoldingPeriod string   `json:"holdingPeriod" msgpack:"holding_period"`
}

// Decision is the trading call derived from the split
type Decision struct {
	Action      Action  `json:"action" msgpack:"action"`
	Confidence  float64 `json:"confidence" msgpack:"confidence"`
	Explanation string  `json:"explanation" msgpack:"explanation"`
}

// StockData is the full research bundle for one company
type StockData struct {
	Company          domain.Company    `json:"company" msgpack:"company"`
	CurrentPrice     float64           `json:"currentPrice" msgpack:"current_price"`
	Change           float64           `json:"change" msgpack:"change"`
	ChangePct        float64           `json:"changePct" msgpack:"change_pct"`
	DayHigh          float64           `json:"dayHigh" msgpack:"day_high"`
	DayLow           float64           `json:"dayLow" msgpack:"day_low"`
	Volume           string            `json:"volume" msgpack:"volume"`
	MarketCap        string            `json:"marketCap" msgpack:"market_cap"`
	PE               float64           `json:"pe" msgpack:"pe"`
	PriceHistory     []PricePoint      `json:"priceHistory" msgpack:"price_history"`
	QuarterlyResults []QuarterlyResult `json:"quarterlyResults" msgpack:"quarterly_results"`
	News             []NewsItem        `json:"news" msgpack:"news"`
	Sentiment        Sentiment         `json:"sentiment" msgpack:"sentiment"`
	AIAnalysis       AIAnalysis        `json:"aiAnalysis" msgpack:"ai_analysis"`
	Decision         Decision          `json:"decision" msgpack:"decision"`
}

// Closes returns the price history as a plain series, oldest first
func (s StockData) Closes() []float64 {
	out := make([]float64, len(s.PriceHistory))
	for i, p := range s.PriceHistory {
		out[i] = p.Price
	}
	return out
}
