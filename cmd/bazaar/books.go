package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aristath/bazaar/internal/modules/derivatives"
	"github.com/aristath/bazaar/internal/modules/funds"
)

var fundsCmd = &cobra.Command{
	Use:   "funds",
	Short: "Show mutual fund holdings and the SIP summary",
	Args:  cobra.NoArgs,
	RunE:  runFunds,
}

var fnoCmd = &cobra.Command{
	Use:   "fno",
	Short: "Show a sample futures and options book",
	Long:  `Fno draws a fresh sample book on every call. It is not deterministic.`,
	Args:  cobra.NoArgs,
	RunE:  runFno,
}

func runFunds(cmd *cobra.Command, args []string) error {
	list, err := container.FundsService.Funds()
	if err != nil {
		return err
	}
	summary, err := container.FundsService.Summary()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderFunds(list, summary))
	return nil
}

func renderFunds(list []funds.Fund, s funds.Summary) string {
	rows := make([][]string, 0, len(list))
	for _, f := range list {
		sip := mutedStyle.Render("-")
		if f.SIPActive {
			sip = fmt.Sprintf("%s %s", formatINR(f.SIPAmount), f.SIPFrequency)
		}
		rows = append(rows, []string{
			f.Name,
			string(f.Category),
			fmt.Sprintf("%.2f", f.NAV),
			formatINR(f.CurrentValue),
			signed(f.Returns, formatPct(f.ReturnsPct)),
			sip,
		})
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Mutual funds"))
	b.WriteString("\n")
	b.WriteString(table([]string{"Fund", "Category", "NAV", "Value", "Returns", "SIP"}, rows))
	b.WriteString("\n\n")
	b.WriteString(boxStyle.Render(fmt.Sprintf("Value %s  Invested %s  Returns %s\nActive SIPs %d  Monthly %s",
		formatINR(s.TotalValue), formatINR(s.TotalInvested),
		signed(s.TotalReturns, formatPct(s.TotalReturnsPct)),
		s.ActiveSIPs, formatINR(s.MonthlySIP))))
	return b.String()
}

func runFno(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), renderBook(container.DerivativesService.Book()))
	return nil
}

func renderBook(book derivatives.Book) string {
	rows := make([][]string, 0, len(book.Positions))
	for _, p := range book.Positions {
		strike := mutedStyle.Render("-")
		if p.StrikePrice > 0 {
			strike = fmt.Sprintf("%.0f", p.StrikePrice)
		}
		rows = append(rows, []string{
			p.Instrument,
			string(p.ContractType),
			strike,
			p.Expiry,
			fmt.Sprintf("%d", p.Quantity),
			fmt.Sprintf("%.2f", p.LTP),
			signed(p.UnrealizedPL, fmt.Sprintf("%s (%s)", formatINR(p.UnrealizedPL), formatPct(p.UnrealizedPLPct))),
		})
	}

	s := book.Summary
	var b strings.Builder
	b.WriteString(titleStyle.Render("F&O positions"))
	b.WriteString("\n")
	b.WriteString(table([]string{"Instrument", "Type", "Strike", "Expiry", "Qty", "LTP", "P&L"}, rows))
	b.WriteString("\n\n")
	b.WriteString(boxStyle.Render(fmt.Sprintf("Margin used %s  Available %s\nUnrealized %s  Day %s  Risk %s",
		formatINR(s.TotalMarginUsed), formatINR(s.AvailableMargin),
		signed(s.TotalUnrealizedPL, formatINR(s.TotalUnrealizedPL)),
		signed(s.DayPL, formatINR(s.DayPL)), s.RiskLevel)))
	return b.String()
}
