package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aristath/bazaar/internal/modules/universe"
)

var featuredOrder int

var featuredCmd = &cobra.Command{
	Use:   "featured",
	Short: "Manage the featured stock list",
}

var featuredListCmd = &cobra.Command{
	Use:   "list",
	Short: "List featured stocks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stocks, err := container.FeaturedRepo.List()
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(stocks))
		for _, s := range stocks {
			rows = append(rows, []string{fmt.Sprintf("%d", s.DisplayOrder), s.Symbol, s.Name, string(s.Exchange), s.Sector})
		}
		if len(rows) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("No featured stocks, the trending list is used"))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), table([]string{"#", "Symbol", "Name", "Exchange", "Sector"}, rows))
		return nil
	},
}

var featuredAddCmd = &cobra.Command{
	Use:   "add [symbol]",
	Short: "Feature a catalog stock",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		company, ok := universe.BySymbol(args[0])
		if !ok {
			return fmt.Errorf("unknown symbol %q", strings.ToUpper(args[0]))
		}
		stock, err := container.FeaturedRepo.Upsert(company, featuredOrder)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), gainStyle.Render("Featured "+stock.Symbol))
		return nil
	},
}

var featuredRemoveCmd = &cobra.Command{
	Use:   "remove [symbol]",
	Short: "Remove a featured stock",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := container.FeaturedRepo.Remove(args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("Removed "+strings.ToUpper(args[0])))
		return nil
	},
}

func init() {
	featuredAddCmd.Flags().IntVar(&featuredOrder, "order", 0, "display order")

	featuredCmd.AddCommand(featuredListCmd)
	featuredCmd.AddCommand(featuredAddCmd)
	featuredCmd.AddCommand(featuredRemoveCmd)
}
