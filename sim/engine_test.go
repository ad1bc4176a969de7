package sim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ritvikindupuri/QuantamTrade/journal"
	"github.com/ritvikindupuri/QuantamTrade/market"
	"github.com/ritvikindupuri/QuantamTrade/portfolio"
)

type testJournal struct {
	trades []journal.TradeRecord
	equity []journal.EquitySnapshot
	closed bool
}

func (j *testJournal) RecordTrade(rec journal.TradeRecord) error {
	j.trades = append(j.trades, rec)
	return nil
}

func (j *testJournal) RecordEquity(rec journal.EquitySnapshot) error {
	j.equity = append(j.equity, rec)
	return nil
}

func (j *testJournal) Close() error {
	j.closed = true
	return nil
}

func newEngine(t *testing.T, cash float64) (*Engine, *testJournal) {
	t.Helper()
	j := &testJournal{}
	e := NewEngine(portfolio.NewStore(cash), j)
	e.now = func() time.Time {
		return time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	}
	return e, j
}

func mustBuy(t *testing.T, e *Engine, pair market.Pair, qty, price float64) portfolio.Trade {
	t.Helper()
	tr, err := e.SubmitOrder(context.Background(), portfolio.Buy, pair, qty, price)
	require.NoError(t, err)
	return tr
}

func TestSubmitOrderBuy(t *testing.T) {
	t.Parallel()

	e, j := newEngine(t, 100000)
	tr := mustBuy(t, e, market.BTCUSD, 1, 50000)

	assert.NotEmpty(t, tr.ID)
	assert.NotEmpty(t, tr.OrderID)
	assert.NotEqual(t, tr.ID, tr.OrderID)
	assert.InDelta(t, 50000, tr.Notional, 1e-9)

	pf := e.Snapshot()
	assert.InDelta(t, 50000, pf.Cash, 1e-9)
	pos, ok := pf.Position(market.BTCUSD)
	require.True(t, ok)
	assert.InDelta(t, 1, pos.Quantity, 1e-9)
	assert.InDelta(t, 50000, pos.AveragePrice, 1e-9)
	assert.Len(t, pf.Trades, 1)
	assert.InDelta(t, 100000, pf.TotalValue, 1e-9)

	require.Len(t, j.trades, 1)
	assert.Equal(t, "buy", j.trades[0].Side)
	assert.Equal(t, "BTC/USD", j.trades[0].Pair)
	require.Len(t, j.equity, 1)
	assert.InDelta(t, 100000, j.equity[0].TotalValue, 1e-9)
}

func TestSubmitOrderRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(t *testing.T, e *Engine)
		side    portfolio.Side
		pair    market.Pair
		qty     float64
		price   float64
		wantErr error
	}{
		{
			name:    "zero quantity",
			side:    portfolio.Buy,
			pair:    market.BTCUSD,
			qty:     0,
			price:   50000,
			wantErr: ErrInvalidQuantity,
		},
		{
			name:    "negative quantity",
			side:    portfolio.Sell,
			pair:    market.BTCUSD,
			qty:     -1,
			price:   50000,
			wantErr: ErrInvalidQuantity,
		},
		{
			name:    "zero price",
			side:    portfolio.Buy,
			pair:    market.BTCUSD,
			qty:     1,
			price:   0,
			wantErr: ErrInvalidPrice,
		},
		{
			name:    "negative price",
			side:    portfolio.Buy,
			pair:    market.BTCUSD,
			qty:     1,
			price:   -50000,
			wantErr: ErrInvalidPrice,
		},
		{
			name:    "unknown pair",
			side:    portfolio.Buy,
			pair:    market.Pair("DOGE/USD"),
			qty:     1,
			price:   1,
			wantErr: ErrUnknownPair,
		},
		{
			name:    "insufficient funds",
			side:    portfolio.Buy,
			pair:    market.BTCUSD,
			qty:     3,
			price:   50000,
			wantErr: ErrInsufficientFunds,
		},
		{
			name:    "sell with no position",
			side:    portfolio.Sell,
			pair:    market.ETHUSD,
			qty:     1,
			price:   3000,
			wantErr: ErrInsufficientPosition,
		},
		{
			name: "sell more than held",
			setup: func(t *testing.T, e *Engine) {
				mustBuy(t, e, market.BTCUSD, 1, 50000)
			},
			side:    portfolio.Sell,
			pair:    market.BTCUSD,
			qty:     2,
			price:   55000,
			wantErr: ErrInsufficientPosition,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, j := newEngine(t, 100000)
			if tt.setup != nil {
				tt.setup(t, e)
			}
			before := e.Snapshot()
			journaled := len(j.trades)

			_, err := e.SubmitOrder(context.Background(), tt.side, tt.pair, tt.qty, tt.price)
			require.ErrorIs(t, err, tt.wantErr)

			// Rejected orders produce zero state mutation.
			after := e.Snapshot()
			assert.Equal(t, before, after)
			assert.Len(t, j.trades, journaled)
		})
	}
}

// Canonical session: 100k cash, buy 1 BTC at 50k, then a second buy at 60k
// must bounce off the 50k cash balance.
func TestSubmitOrderScenario(t *testing.T) {
	t.Parallel()

	e, _ := newEngine(t, 100000)
	mustBuy(t, e, market.BTCUSD, 1, 50000)

	pf := e.Snapshot()
	assert.InDelta(t, 50000, pf.Cash, 1e-9)
	assert.InDelta(t, 100000, pf.TotalValue, 1e-9)

	_, err := e.SubmitOrder(context.Background(), portfolio.Buy, market.BTCUSD, 1, 60000)
	require.ErrorIs(t, err, ErrInsufficientFunds)

	after := e.Snapshot()
	assert.Equal(t, pf, after)
}

func TestSubmitOrderAveragingAcrossFills(t *testing.T) {
	t.Parallel()

	e, _ := newEngine(t, 200000)
	mustBuy(t, e, market.BTCUSD, 1, 50000)
	mustBuy(t, e, market.BTCUSD, 1, 60000)

	pf := e.Snapshot()
	pos, ok := pf.Position(market.BTCUSD)
	require.True(t, ok)
	assert.InDelta(t, 2, pos.Quantity, 1e-9)
	assert.InDelta(t, 55000, pos.AveragePrice, 1e-9)
	assert.InDelta(t, 90000, pf.Cash, 1e-9)
}

func TestSubmitOrderSellClosesPosition(t *testing.T) {
	t.Parallel()

	e, j := newEngine(t, 100000)
	mustBuy(t, e, market.BTCUSD, 1, 50000)

	_, err := e.SubmitOrder(context.Background(), portfolio.Sell, market.BTCUSD, 1, 55000)
	require.NoError(t, err)

	pf := e.Snapshot()
	_, held := pf.Position(market.BTCUSD)
	assert.False(t, held)
	assert.InDelta(t, 105000, pf.Cash, 1e-9)
	assert.InDelta(t, 105000, pf.TotalValue, 1e-9)
	assert.Len(t, pf.Trades, 2)
	assert.Len(t, j.trades, 2)
}

func TestOnPricesRepricesWithoutTrading(t *testing.T) {
	t.Parallel()

	e, j := newEngine(t, 100000)
	mustBuy(t, e, market.BTCUSD, 1, 50000)

	pf := e.OnPrices(map[market.Pair]float64{market.BTCUSD: 52000})

	pos, _ := pf.Position(market.BTCUSD)
	assert.InDelta(t, 2000, pos.UnrealizedPnL, 1e-9)
	assert.InDelta(t, 102000, pf.TotalValue, 1e-9)
	assert.InDelta(t, 50000, pf.Cash, 1e-9)
	assert.Len(t, pf.Trades, 1)

	// Trade equity + reprice equity.
	require.Len(t, j.equity, 2)
	assert.InDelta(t, 102000, j.equity[1].TotalValue, 1e-9)
	assert.InDelta(t, 2000, j.equity[1].UnrealizedPnL, 1e-9)
}

func TestOnTickIgnoresBadTicks(t *testing.T) {
	t.Parallel()

	e, _ := newEngine(t, 100000)
	mustBuy(t, e, market.BTCUSD, 1, 50000)
	before := e.Snapshot()

	pf := e.OnTick(market.Tick{Pair: market.Pair("DOGE/USD"), Price: 1})
	assert.Equal(t, before.LastPrices, pf.LastPrices)

	pf = e.OnTick(market.Tick{Pair: market.BTCUSD, Price: -1})
	assert.Equal(t, before.LastPrices, pf.LastPrices)
	assert.InDelta(t, before.TotalValue, pf.TotalValue, 1e-9)
}

func TestNewEngineNilJournal(t *testing.T) {
	t.Parallel()

	e := NewEngine(portfolio.NewStore(1000), nil)
	_, err := e.SubmitOrder(context.Background(), portfolio.Buy, market.SOLUSD, 1, 150)
	assert.NoError(t, err)
}
