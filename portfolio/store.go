package portfolio

import (
	"fmt"
	"sync"

	"github.com/ritvikindupuri/QuantamTrade/market"
)

// Store is the single owner of mutable portfolio state. Every mutation runs
// as one critical section, so callers only ever observe complete snapshots.
//
// Store does not validate order preconditions; that is the executor's job.
// A trade that would drive cash or a position quantity negative indicates a
// validation defect upstream and panics rather than corrupting state.
type Store struct {
	mu         sync.RWMutex
	cash       float64
	positions  map[market.Pair]Position
	trades     []Trade
	lastPrices map[market.Pair]float64
	totalValue float64
}

// NewStore creates a portfolio with an initial cash endowment and no
// positions or trades.
func NewStore(initialCash float64) *Store {
	return &Store{
		cash:       initialCash,
		positions:  make(map[market.Pair]Position),
		lastPrices: make(map[market.Pair]float64),
		totalValue: initialCash,
	}
}

// ApplyTrade commits one fill: moves cash by the notional, updates or
// creates the position, appends to the trade log, and revalues the account
// using the trade's own price as the pair's latest mark.
func (s *Store) ApplyTrade(t Trade) Portfolio {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch t.Side {
	case Buy:
		if t.Notional > s.cash {
			panic(fmt.Sprintf("portfolio: buy %s for %.8f exceeds cash %.8f (executor must validate funds)",
				t.Pair, t.Notional, s.cash))
		}
		s.cash -= t.Notional

		pos, held := s.positions[t.Pair]
		if held {
			newQty := pos.Quantity + t.Quantity
			pos.AveragePrice = (pos.AveragePrice*pos.Quantity + t.Price*t.Quantity) / newQty
			pos.Quantity = newQty
		} else {
			pos = Position{Pair: t.Pair, Quantity: t.Quantity, AveragePrice: t.Price}
		}
		s.positions[t.Pair] = pos

	case Sell:
		pos, held := s.positions[t.Pair]
		if !held || t.Quantity > pos.Quantity {
			panic(fmt.Sprintf("portfolio: sell %.8f %s exceeds held quantity (executor must validate position)",
				t.Quantity, t.Pair))
		}
		s.cash += t.Notional

		// Average entry price is unchanged on a partial sell.
		pos.Quantity -= t.Quantity
		if pos.Quantity == 0 {
			delete(s.positions, t.Pair)
		} else {
			s.positions[t.Pair] = pos
		}

	default:
		panic(fmt.Sprintf("portfolio: unknown trade side %q", t.Side))
	}

	s.lastPrices[t.Pair] = t.Price
	s.trades = append(s.trades, t)
	s.remarkLocked()

	return s.snapshotLocked()
}

// RepriceAll applies a batch of external price ticks. Non-positive prices
// and pairs outside the configured set are skipped. Cash, quantities, and
// average entry prices are never touched here.
func (s *Store) RepriceAll(prices map[market.Pair]float64) Portfolio {
	s.mu.Lock()
	defer s.mu.Unlock()

	for p, px := range prices {
		if px <= 0 || !market.Known(p) {
			continue
		}
		s.lastPrices[p] = px
	}
	s.remarkLocked()

	return s.snapshotLocked()
}

// Snapshot returns a deep-copied view of the current state.
func (s *Store) Snapshot() Portfolio {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// remarkLocked recomputes every position's unrealized P&L and the total
// value from scratch. TotalValue is never drifted incrementally.
func (s *Store) remarkLocked() {
	total := s.cash
	for p, pos := range s.positions {
		last, ok := s.lastPrices[p]
		if !ok {
			// Unreachable in practice: the opening trade set a mark.
			continue
		}
		pos.UnrealizedPnL = (last - pos.AveragePrice) * pos.Quantity
		s.positions[p] = pos
		total += last * pos.Quantity
	}
	s.totalValue = total
}

func (s *Store) snapshotLocked() Portfolio {
	positions := make(map[market.Pair]Position, len(s.positions))
	for p, pos := range s.positions {
		positions[p] = pos
	}
	lastPrices := make(map[market.Pair]float64, len(s.lastPrices))
	for p, px := range s.lastPrices {
		lastPrices[p] = px
	}
	trades := make([]Trade, len(s.trades))
	copy(trades, s.trades)

	return Portfolio{
		Cash:       s.cash,
		Positions:  positions,
		Trades:     trades,
		LastPrices: lastPrices,
		TotalValue: s.totalValue,
	}
}
