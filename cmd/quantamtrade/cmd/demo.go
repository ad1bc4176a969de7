package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ritvikindupuri/QuantamTrade/journal"
	"github.com/ritvikindupuri/QuantamTrade/market"
	"github.com/ritvikindupuri/QuantamTrade/portfolio"
	"github.com/ritvikindupuri/QuantamTrade/sim"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a fixed scripted session without a config file",
	Long: `Run a short scripted session against a fresh $100,000 account:
buy 1 BTC/USD at $50,000, attempt an overdrawn second buy, reprice, and
close the position. Useful as a smoke test and a worked example.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	store := portfolio.NewStore(100000)
	engine := sim.NewEngine(store, journal.Discard{})

	fmt.Println("Starting with $100000.00 cash, no positions")

	trade, err := engine.SubmitOrder(ctx, portfolio.Buy, market.BTCUSD, 1, 50000)
	if err != nil {
		return err
	}
	pf := engine.Snapshot()
	fmt.Printf("Bought %v %s at $%.2f (trade %s): cash $%.2f, total $%.2f\n",
		trade.Quantity, trade.Pair, trade.Price, trade.ID, pf.Cash, pf.TotalValue)

	// This one must bounce: only $50,000 left.
	_, err = engine.SubmitOrder(ctx, portfolio.Buy, market.BTCUSD, 1, 60000)
	if !errors.Is(err, sim.ErrInsufficientFunds) {
		return fmt.Errorf("expected insufficient funds rejection, got %v", err)
	}
	fmt.Printf("Second buy rejected as expected: %v\n", err)

	pf = engine.OnPrices(map[market.Pair]float64{market.BTCUSD: 55000})
	pos, _ := pf.Position(market.BTCUSD)
	fmt.Printf("Repriced BTC/USD to $55000.00: unrealized $%.2f, total $%.2f\n",
		pos.UnrealizedPnL, pf.TotalValue)

	trade, err = engine.SubmitOrder(ctx, portfolio.Sell, market.BTCUSD, 1, 55000)
	if err != nil {
		return err
	}
	pf = engine.Snapshot()
	fmt.Printf("Sold %v %s at $%.2f: cash $%.2f, total $%.2f, %d trades\n",
		trade.Quantity, trade.Pair, trade.Price, pf.Cash, pf.TotalValue, len(pf.Trades))

	return nil
}
