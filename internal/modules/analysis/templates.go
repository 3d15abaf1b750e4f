package analysis

import (
	"fmt"

	"github.com/aristath/bazaar/pkg/formulas"
)

var headlines = map[NewsSentiment][5]string{
	NewsPositive: {
		"reports strong quarterly earnings beating estimates",
		"announces strategic expansion into new markets",
		"receives upgraded rating from major brokerage",
		"signs landmark partnership deal worth billions",
		"posts record revenue growth in latest quarter",
	},
	NewsNegative: {
		"faces regulatory scrutiny over compliance concerns",
		"reports lower than expected quarterly profits",
		"sees key management departures in leadership shakeup",
		"impacted by global supply chain disruptions",
		"faces increased competition in core market segment",
	},
	NewsNeutral: {
		"maintains steady growth trajectory in annual review",
		"announces board meeting for quarterly results review",
		"participates in industry conference showcasing roadmap",
		"declares interim dividend for shareholders",
		"completes planned restructuring of business units",
	},
}

var (
	quarters       = [8]string{"Q1 FY24", "Q2 FY24", "Q3 FY24", "Q4 FY24", "Q1 FY25", "Q2 FY25", "Q3 FY25", "Q4 FY25"}
	newsSentiments = [5]NewsSentiment{NewsPositive, NewsNeutral, NewsNegative, NewsPositive, NewsNeutral}
	newsSources    = [5]string{"Economic Times", "Moneycontrol", "LiveMint", "CNBC TV18", "Business Standard"}
	riskLevels     = [3]string{"Low", "Medium", "High"}
	holdingPeriods = [3]string{"Short", "Medium", "Long"}
)

func outlook(buyPct int) string {
	switch {
	case buyPct > 50:
		return "strong growth potential"
	case buyPct > 35:
		return "moderate outlook"
	default:
		return "cautious positioning"
	}
}

func sentimentModifier(d Direction) string {
	switch d {
	case DirectionPositive:
		return "strengthened by positive market sentiment"
	case DirectionNegative:
		return "tempered by negative market sentiment"
	default:
		return "balanced with neutral market sentiment"
	}
}

func insightText(name, sector string, buyPct int) string {
	return fmt.Sprintf(
		"Based on comprehensive analysis of %s's fundamentals, market positioning, and recent quarterly performance, "+
			"the company shows %s driven by %s sector dynamics. Key drivers include revenue trajectory, margin expansion "+
			"potential, and competitive positioning within the Indian market landscape.",
		name, outlook(buyPct), sector,
	)
}

func explanationText(name string, action Action, sentiment Sentiment, ai AIAnalysis) string {
	return fmt.Sprintf(
		"The %s recommendation for %s is %s (confidence: %s). AI analysis assigns %d%% buy / %d%% sell / %d%% hold "+
			"probability. Risk level assessed as %s with %s-term holding horizon recommended. "+
			"This is AI-based probabilistic research analysis.",
		action, name, sentimentModifier(sentiment.Direction), formulas.ToFixed(sentiment.Confidence, 2),
		ai.BuyPct, ai.SellPct, ai.HoldPct, ai.RiskScore, ai.HoldingPeriod,
	)
}
