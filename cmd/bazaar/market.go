package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aristath/bazaar/internal/modules/market"
)

var quoteDate string

var quoteCmd = &cobra.Command{
	Use:   "quote [symbol]",
	Short: "Show the synthetic quote for a symbol",
	Long:  `Quote prints price, change and change % for a symbol. The same symbol and day always give the same quote.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runQuote,
}

var moversCmd = &cobra.Command{
	Use:   "movers",
	Short: "Show today's top bullish and bearish movers",
	Args:  cobra.NoArgs,
	RunE:  runMovers,
}

func init() {
	quoteCmd.Flags().StringVar(&quoteDate, "date", "", `day key such as "Mon Jan 01 2024" (default today)`)
}

func runQuote(cmd *cobra.Command, args []string) error {
	symbol := strings.ToUpper(strings.TrimSpace(args[0]))
	quote, err := container.MarketService.Quote(symbol, quoteDate)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderQuote(symbol, quote))
	return nil
}

func renderQuote(symbol string, q market.Quote) string {
	change := signed(q.Change, fmt.Sprintf("%+.2f (%s)", q.Change, formatPct(q.ChangePct)))
	return boxStyle.Render(headerStyle.Render(symbol) + "\n" + formatINR(q.Price) + "  " + change)
}

func runMovers(cmd *cobra.Command, args []string) error {
	movers, err := container.MarketService.Movers()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderMovers(movers))
	return nil
}

func renderMovers(m market.Movers) string {
	section := func(title string, list []market.Mover) string {
		rows := make([][]string, 0, len(list))
		for _, mv := range list {
			rows = append(rows, []string{mv.Symbol, mv.Name, formatINR(mv.Price), signed(mv.ChangePct, formatPct(mv.ChangePct))})
		}
		return titleStyle.Render(title) + "\n" + table([]string{"Symbol", "Name", "Price", "Change"}, rows)
	}

	return mutedStyle.Render(m.DateKey) + "\n\n" +
		section("Top gainers", m.Bullish) + "\n\n" +
		section("Top losers", m.Bearish)
}
