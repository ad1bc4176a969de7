package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quantamtrade",
	Short: "A simulated crypto trading account with a synthetic price feed",
	Long: `QuantamTrade simulates a trading account against a synthetic price feed.

It provides tools for:
  - Executing market orders against simulated prices
  - Tracking cash, positions, trade history, and mark-to-market value
  - Recording trades and equity curves to CSV or SQLite journals
  - Computing Sharpe ratio, max drawdown, and volatility for a session
  - Driving sessions from pluggable signal strategies`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
