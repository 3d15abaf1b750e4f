package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aristath/bazaar/internal/modules/analysis"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [symbol]",
	Short: "Show the research bundle and trading decision for a symbol",
	Long:  `Analyze asks the configured AI endpoint for a research bundle and falls back to generated research data when it is unavailable.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	result, err := container.AnalysisService.Analyze(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderAnalysis(result))
	return nil
}

func renderAnalysis(r analysis.Result) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%s:%s)", r.Company.Name, r.Company.Exchange, r.Company.Symbol)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", formatINR(r.CurrentPrice),
		signed(r.Change, fmt.Sprintf("%+.2f (%s)", r.Change, formatPct(r.ChangePct)))))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("High %s  Low %s  Vol %s  MCap %s  P/E %.1f",
		formatINR(r.DayHigh), formatINR(r.DayLow), r.Volume, r.MarketCap, r.PE)))
	b.WriteString("\n\n")

	ai := r.AIAnalysis
	b.WriteString(headerStyle.Render("Analyst split"))
	b.WriteString(fmt.Sprintf("\nBuy %d%%  Sell %d%%  Hold %d%%  Risk %s  Horizon %s\n",
		ai.BuyPct, ai.SellPct, ai.HoldPct, ai.RiskScore, ai.HoldingPeriod))
	b.WriteString(ai.Insight)
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(r.News))
	for _, n := range r.News {
		rows = append(rows, []string{string(n.Sentiment), n.Title, mutedStyle.Render(n.Source + ", " + n.Time)})
	}
	b.WriteString(table([]string{"Sentiment", "Headline", "Source"}, rows))
	b.WriteString("\n\n")

	decision := fmt.Sprintf("%s (%.0f%% confidence)", r.Decision.Action, r.Decision.Confidence*100)
	switch r.Decision.Action {
	case analysis.ActionBuy:
		decision = gainStyle.Render(decision)
	case analysis.ActionSell:
		decision = lossStyle.Render(decision)
	default:
		decision = headerStyle.Render(decision)
	}
	b.WriteString(boxStyle.Render(decision + "\n" + r.Decision.Explanation))

	if r.Notice != "" {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(r.Notice))
	}
	return b.String()
}
