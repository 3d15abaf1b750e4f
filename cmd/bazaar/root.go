package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aristath/bazaar/internal/config"
	"github.com/aristath/bazaar/internal/di"
	"github.com/aristath/bazaar/pkg/logger"
)

var (
	dataDir string
	verbose bool

	container *di.Container
)

var rootCmd = &cobra.Command{
	Use:   "bazaar",
	Short: "Synthetic Indian equities market data",
	Long: `Bazaar prints deterministic synthetic market data for the NSE/BSE universe.

Commands:
    quote       Price, change and change % for a symbol
    movers      Top bullish and bearish movers for today
    analyze     Research bundle and trading decision for a symbol
    funds       Mutual fund holdings and SIP summary
    fno         Sample futures and options book
    featured    Manage the featured stock list
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return openContainer()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if container != nil {
			container.Close()
		}
	},
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default from BAZAAR_DATA_DIR)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(moversCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(fundsCmd)
	rootCmd.AddCommand(fnoCmd)
	rootCmd.AddCommand(featuredCmd)
}

func openContainer() error {
	if dataDir != "" {
		if err := os.Setenv("BAZAAR_DATA_DIR", dataDir); err != nil {
			return err
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	level := "warn"
	if verbose {
		level = "debug"
	}
	log := logger.New(logger.Config{Level: level, Pretty: true, Output: os.Stderr})

	container, err = di.Wire(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to open data directory: %w", err)
	}
	return nil
}
