// Package portfolio owns the simulated account state: cash, open positions,
// the trade log, and the mark-to-market valuation derived from them.
package portfolio

import (
	"time"

	"github.com/ritvikindupuri/QuantamTrade/market"
)

// Side is the direction of an order or trade.
type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// Trade is an immutable record of one executed fill. Trades are append-only;
// the log is ordered by execution time and never mutated.
type Trade struct {
	ID       string
	OrderID  string
	Time     time.Time
	Side     Side
	Pair     market.Pair
	Price    float64
	Quantity float64
	Notional float64 // Price * Quantity
}

// Position is the aggregated holding in one pair. Quantity is strictly
// positive; a fully closed position is removed, never kept at zero.
type Position struct {
	Pair          market.Pair
	Quantity      float64
	AveragePrice  float64 // weighted-average cost basis
	UnrealizedPnL float64 // (lastPrice - AveragePrice) * Quantity
}

// Portfolio is a read-only snapshot of the account.
type Portfolio struct {
	Cash       float64
	Positions  map[market.Pair]Position
	Trades     []Trade
	LastPrices map[market.Pair]float64
	TotalValue float64 // Cash + sum(lastPrice * quantity) over positions
}

// Position returns the held position in p, if any.
func (pf Portfolio) Position(p market.Pair) (Position, bool) {
	pos, ok := pf.Positions[p]
	return pos, ok
}

// UnrealizedPnL is the mark-to-market gain or loss across all open positions.
func (pf Portfolio) UnrealizedPnL() float64 {
	var sum float64
	for _, pos := range pf.Positions {
		sum += pos.UnrealizedPnL
	}
	return sum
}
