package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ritvikindupuri/QuantamTrade/config"
	"github.com/ritvikindupuri/QuantamTrade/feed"
	"github.com/ritvikindupuri/QuantamTrade/journal"
	"github.com/ritvikindupuri/QuantamTrade/market"
	"github.com/ritvikindupuri/QuantamTrade/portfolio"
	"github.com/ritvikindupuri/QuantamTrade/risk"
	"github.com/ritvikindupuri/QuantamTrade/sim"
	"github.com/ritvikindupuri/QuantamTrade/strategies"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulated trading session from a config file",
	Long: `Run a simulated trading session.

Each tick the synthetic feed moves every pair's price and the portfolio is
marked to market. If a strategy is configured, its buy/sell advice is
submitted as market orders at the advised price.

Example:
  quantamtrade run --config examples/configs/basic.yaml`,
	RunE: runRun,
}

var runConfigPath string

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "f", "", "path to config file (YAML or JSON); defaults apply when omitted")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if runConfigPath != "" {
		loaded, err := config.LoadFromFile(runConfigPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	j, err := buildJournal(cfg)
	if err != nil {
		return fmt.Errorf("create journal: %w", err)
	}
	defer j.Close()

	store := portfolio.NewStore(cfg.Account.Cash)
	engine := sim.NewEngine(store, j)
	walk := feed.NewRandomWalk(cfg.Feed.Seed, cfg.Feed.Step, cfg.FeedPairs())

	var strat strategies.Strategy
	var stratPair market.Pair
	if cfg.Strategy.Name != "" {
		stratPair = market.Pair(cfg.Strategy.Pair)
		strat, err = strategies.ByName(cfg.Strategy.Name, stratPair)
		if err != nil {
			return err
		}
	}

	interval, err := cfg.Feed.ParseInterval()
	if err != nil {
		return err
	}

	fmt.Printf("Running session: account %s, cash $%.2f %s, %d ticks\n",
		cfg.Account.ID, cfg.Account.Cash, cfg.Account.Currency, cfg.Feed.Ticks)
	if strat != nil {
		fmt.Printf("Strategy: %s on %s, order size %v\n", strat.Name(), stratPair, cfg.Strategy.Quantity)
	}
	fmt.Println()

	ctx := context.Background()
	now := time.Now()
	equityCurve := make([]float64, 0, cfg.Feed.Ticks+1)
	equityCurve = append(equityCurve, cfg.Account.Cash)

	for i := 0; i < cfg.Feed.Ticks; i++ {
		now = now.Add(interval)
		prices := walk.Next()
		pf := engine.OnPrices(prices)

		if strat != nil {
			advice := strat.Update(market.Tick{
				Pair:  stratPair,
				Price: prices[stratPair],
				Time:  now,
			})
			if err := act(ctx, engine, advice, cfg.Strategy.Quantity); err != nil {
				fmt.Printf("tick %d: %v\n", i, err)
			}
			pf = engine.Snapshot()
		}

		equityCurve = append(equityCurve, pf.TotalValue)
	}

	printSummary(engine.Snapshot(), cfg.Account.Cash, equityCurve)
	return nil
}

// act turns strategy advice into a market order. Rejections are reported,
// not fatal: an underfunded buy or an oversized sell just skips the tick.
func act(ctx context.Context, engine *sim.Engine, advice strategies.Advice, quantity float64) error {
	switch advice.Signal {
	case strategies.Buy:
		_, err := engine.SubmitOrder(ctx, portfolio.Buy, advice.Pair, quantity, advice.Price)
		return err
	case strategies.Sell:
		// Close out what is held, capped at the configured size.
		pos, held := engine.Snapshot().Position(advice.Pair)
		if !held {
			return nil
		}
		qty := quantity
		if pos.Quantity < qty {
			qty = pos.Quantity
		}
		_, err := engine.SubmitOrder(ctx, portfolio.Sell, advice.Pair, qty, advice.Price)
		return err
	}
	return nil
}

func buildJournal(cfg *config.Config) (journal.Journal, error) {
	switch cfg.Journal.Type {
	case "csv":
		return journal.NewCSV(cfg.Journal.TradesFile, cfg.Journal.EquityFile)
	case "sqlite":
		return journal.NewSQLite(cfg.Journal.DBPath)
	default:
		return journal.Discard{}, nil
	}
}

func printSummary(pf portfolio.Portfolio, startingCash float64, equityCurve []float64) {
	fmt.Printf("\nFinal Results:\n")
	fmt.Printf("  Cash:        $%.2f\n", pf.Cash)
	fmt.Printf("  Total Value: $%.2f\n", pf.TotalValue)
	fmt.Printf("  Net P/L:     $%.2f\n", pf.TotalValue-startingCash)
	fmt.Printf("  Trades:      %d\n", len(pf.Trades))

	for _, p := range market.AllPairs() {
		pos, held := pf.Position(p)
		if !held {
			continue
		}
		fmt.Printf("  Position:    %s qty %.6f avg $%.2f unrealized $%.2f\n",
			p, pos.Quantity, pos.AveragePrice, pos.UnrealizedPnL)
	}

	m := risk.Report(equityCurve)
	fmt.Printf("\nRisk Metrics:\n")
	fmt.Printf("  Sharpe Ratio: %.4f\n", m.SharpeRatio)
	fmt.Printf("  Max Drawdown: %.2f%%\n", m.MaxDrawdown*100)
	fmt.Printf("  Volatility:   %.2f%%\n", m.Volatility*100)
}
