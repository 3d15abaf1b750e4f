package analysis

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/aristath/bazaar/internal/domain"
	"github.com/aristath/bazaar/pkg/formulas"
	"github.com/aristath/bazaar/pkg/seeded"
)

// DrawOrderVersion identifies the sequence in which Generate consumes the
// stream. Any change to the order changes every output for existing symbols and
// must bump this value.
const DrawOrderVersion = 1

const (
	// HistoryDays is the length of the price history
	HistoryDays = 30
	// HistoryLabelLayout formats price history labels ("05 Mar")
	HistoryLabelLayout = "02 Jan"
)

// Generate builds the research bundle for company. The stream is seeded from
// the symbol alone; asOf only positions the history labels. Draw order (v1):
// base, change, 30 history steps, 8x(revenue, margin, eps), 5x(headline, age),
// sentiment avg, sentiment confidence, trend (one or two draws), buy, sell,
// risk, holding period, decision confidence, day high, day low, volume,
// market cap, P/E.
func Generate(company domain.Company, asOf time.Time) (StockData, error) {
	if strings.TrimSpace(company.Symbol) == "" || strings.TrimSpace(company.Name) == "" {
		return StockData{}, ErrInvalidCompany
	}

	rng, err := seeded.ForKey(company.Symbol)
	if err != nil {
		return StockData{}, fmt.Errorf("failed to seed analysis for %s: %w", company.Symbol, err)
	}

	basePrice := 500 + rng.Next()*4500
	currentPrice := formulas.Round2(basePrice)
	change := formulas.Round2((rng.Next() - 0.45) * basePrice * 0.04)
	changePct := formulas.RoundPct2(change / (currentPrice - change))

	data := StockData{
		Company:      company,
		CurrentPrice: currentPrice,
		Change:       change,
		ChangePct:    changePct,
	}

	data.PriceHistory = priceHistory(rng, basePrice, currentPrice, change, asOf)
	data.QuarterlyResults = quarterlyResults(rng)
	data.News = news(rng, company.Name)
	data.Sentiment = sentiment(rng)

	ai := aiAnalysis(rng, company, data.News)
	data.AIAnalysis = ai

	action := DecideAction(ai.BuyPct, ai.SellPct, ai.HoldPct)
	data.Decision = Decision{
		Action:      action,
		Confidence:  formulas.Round2(0.55 + rng.Next()*0.4),
		Explanation: explanationText(company.Name, action, data.Sentiment, ai),
	}

	data.DayHigh = formulas.Round2(currentPrice + rng.Next()*basePrice*0.02)
	data.DayLow = formulas.Round2(currentPrice - rng.Next()*basePrice*0.02)
	data.Volume = formulas.ToFixed(rng.Next()*50+5, 1) + "M"
	data.MarketCap = "₹" + formulas.ToFixed(rng.Next()*15+0.5, 2) + "L Cr"
	data.PE = formulas.Round2(10 + rng.Next()*60)

	return data, nil
}

// DecideAction picks the largest share; ties resolve BUY over SELL over HOLD.
func DecideAction(buyPct, sellPct, holdPct int) Action {
	switch {
	case buyPct >= sellPct && buyPct >= holdPct:
		return ActionBuy
	case sellPct >= holdPct:
		return ActionSell
	default:
		return ActionHold
	}
}

// priceHistory walks back from the current price. The floor is applied before
// rounding, so a point is never below Round2(0.85*basePrice).
func priceHistory(rng *seeded.Stream, basePrice, currentPrice, change float64, asOf time.Time) []PricePoint {
	floor := basePrice * 0.85
	points := make([]PricePoint, 0, HistoryDays)
	p := currentPrice - change*15
	for i := HistoryDays - 1; i >= 0; i-- {
		p += (rng.Next() - 0.48) * basePrice * 0.015
		p = math.Max(p, floor)
		points = append(points, PricePoint{
			Time:  asOf.AddDate(0, 0, -i).Format(HistoryLabelLayout),
			Price: formulas.Round2(p),
		})
	}
	return points
}

func quarterlyResults(rng *seeded.Stream) []QuarterlyResult {
	results := make([]QuarterlyResult, 0, len(quarters))
	for _, q := range quarters {
		revenue := 1000 + rng.Next()*15000
		margin := 0.05 + rng.Next()*0.25
		results = append(results, QuarterlyResult{
			Quarter: q,
			Revenue: formulas.JSRound(revenue),
			Profit:  formulas.JSRound(revenue * margin),
			EPS:     formulas.Round2(rng.Next() * 50),
		})
	}
	return results
}

func news(rng *seeded.Stream, name string) []NewsItem {
	items := make([]NewsItem, 0, len(newsSentiments))
	for i, s := range newsSentiments {
		headline := headlines[s][rng.Intn(5)]
		hours := rng.Intn(12) + 1
		items = append(items, NewsItem{
			Title:     name + " " + headline,
			Source:    newsSources[i],
			Time:      fmt.Sprintf("%dh ago", hours),
			Sentiment: s,
		})
	}
	return items
}

func sentiment(rng *seeded.Stream) Sentiment {
	avg := formulas.Round2(rng.Next()*2 - 1)
	s := Sentiment{
		AvgSentiment: avg,
		Confidence:   formulas.Round2(0.5 + rng.Next()*0.5),
	}

	switch {
	case avg > 0.2:
		s.Direction = DirectionPositive
	case avg < -0.2:
		s.Direction = DirectionNegative
	default:
		s.Direction = DirectionNeutral
	}

	// The second draw only happens when the first misses.
	switch {
	case rng.Next() > 0.6:
		s.Trend = TrendStrengthening
	case rng.Next() > 0.3:
		s.Trend = TrendStable
	default:
		s.Trend = TrendWeakening
	}
	return s
}

// aiAnalysis draws buy, sell, risk and holding period. Since buy is at most 75,
// sell = round(10 + d*(90-buy)) never exceeds 100-buy, so hold is never negative.
func aiAnalysis(rng *seeded.Stream, company domain.Company, items []NewsItem) AIAnalysis {
	buyPct := int(formulas.JSRound(25 + rng.Next()*50))
	sellPct := int(formulas.JSRound(10 + rng.Next()*float64(90-buyPct)))
	holdPct := 100 - buyPct - sellPct

	summary := make([]string, 0, len(items))
	for _, n := range items {
		summary = append(summary, n.Title)
	}

	return AIAnalysis{
		NewsSummary:   summary,
		Insight:       insightText(company.Name, company.Sector, buyPct),
		BuyPct:        buyPct,
		SellPct:       sellPct,
		HoldPct:       holdPct,
		RiskScore:     riskLevels[rng.Intn(3)],
		HoldingPeriod: holdingPeriods[rng.Intn(3)],
	}
}
