// Package sim executes market orders against a simulated account and feeds
// external price ticks into it.
package sim

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ritvikindupuri/QuantamTrade/journal"
	"github.com/ritvikindupuri/QuantamTrade/market"
	"github.com/ritvikindupuri/QuantamTrade/pkg/id"
	"github.com/ritvikindupuri/QuantamTrade/portfolio"
)

// Engine validates order requests and commits accepted fills to the
// portfolio store. Every accepted order fills entirely at the supplied
// price; there are no partial fills and no pending state.
type Engine struct {
	mu      sync.Mutex
	store   *portfolio.Store
	journal journal.Journal
	now     func() time.Time
}

// NewEngine wires an engine to its store and journal. The store is owned by
// the caller; the engine is its only trade-path mutator.
func NewEngine(store *portfolio.Store, j journal.Journal) *Engine {
	if j == nil {
		j = journal.Discard{}
	}
	return &Engine{
		store:   store,
		journal: j,
		now:     time.Now,
	}
}

// SubmitOrder validates the request against the current portfolio and, if it
// passes, commits the resulting fill. Validation and commit run under one
// lock, so two orders can never both pass validation against the same stale
// cash balance.
//
// Rejections are sentinel errors (ErrInvalidQuantity, ErrInvalidPrice,
// ErrUnknownPair, ErrInsufficientFunds, ErrInsufficientPosition) and leave
// the portfolio untouched.
func (e *Engine) SubmitOrder(ctx context.Context, side portfolio.Side, pair market.Pair, quantity, price float64) (portfolio.Trade, error) {
	_ = ctx // market orders commit synchronously; no cancellation point

	if quantity <= 0 {
		return portfolio.Trade{}, fmt.Errorf("submit %s %s: quantity %v: %w", side, pair, quantity, ErrInvalidQuantity)
	}
	if price <= 0 {
		return portfolio.Trade{}, fmt.Errorf("submit %s %s: price %v: %w", side, pair, price, ErrInvalidPrice)
	}
	if !market.Known(pair) {
		return portfolio.Trade{}, fmt.Errorf("submit %s %q: %w", side, pair, ErrUnknownPair)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	pf := e.store.Snapshot()
	notional := quantity * price

	switch side {
	case portfolio.Buy:
		if pf.Cash < notional {
			return portfolio.Trade{}, fmt.Errorf("submit buy %s: need %.8f, cash %.8f: %w",
				pair, notional, pf.Cash, ErrInsufficientFunds)
		}
	case portfolio.Sell:
		pos, held := pf.Position(pair)
		if !held || pos.Quantity < quantity {
			return portfolio.Trade{}, fmt.Errorf("submit sell %s: quantity %v: %w",
				pair, quantity, ErrInsufficientPosition)
		}
	default:
		return portfolio.Trade{}, fmt.Errorf("submit order: unknown side %q", side)
	}

	trade := portfolio.Trade{
		ID:       id.New(),
		OrderID:  id.New(),
		Time:     e.now(),
		Side:     side,
		Pair:     pair,
		Price:    price,
		Quantity: quantity,
		Notional: notional,
	}

	pf = e.store.ApplyTrade(trade)
	e.record(trade, pf)

	return trade, nil
}

// OnPrices applies a batch of external price ticks: open positions are
// marked to market, cash and quantities stay untouched. Unknown pairs and
// non-positive prices are skipped by the store.
func (e *Engine) OnPrices(prices map[market.Pair]float64) portfolio.Portfolio {
	pf := e.store.RepriceAll(prices)

	// Journal failures never roll back a reprice.
	_ = e.journal.RecordEquity(journal.EquitySnapshot{
		Time:          e.now(),
		Cash:          pf.Cash,
		TotalValue:    pf.TotalValue,
		UnrealizedPnL: pf.UnrealizedPnL(),
	})
	return pf
}

// OnTick applies a single price tick.
func (e *Engine) OnTick(t market.Tick) portfolio.Portfolio {
	return e.OnPrices(map[market.Pair]float64{t.Pair: t.Price})
}

// Snapshot is the read accessor for display layers.
func (e *Engine) Snapshot() portfolio.Portfolio {
	return e.store.Snapshot()
}

// record writes the fill and the post-trade equity to the journal. The fill
// has already committed, so journal errors are not surfaced to the caller.
func (e *Engine) record(t portfolio.Trade, pf portfolio.Portfolio) {
	_ = e.journal.RecordTrade(journal.TradeRecord{
		TradeID:  t.ID,
		OrderID:  t.OrderID,
		Time:     t.Time,
		Side:     string(t.Side),
		Pair:     string(t.Pair),
		Price:    t.Price,
		Quantity: t.Quantity,
		Notional: t.Notional,
	})
	_ = e.journal.RecordEquity(journal.EquitySnapshot{
		Time:          t.Time,
		Cash:          pf.Cash,
		TotalValue:    pf.TotalValue,
		UnrealizedPnL: pf.UnrealizedPnL(),
	})
}
