package strategies

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ritvikindupuri/QuantamTrade/market"
)

func tick(price float64) market.Tick {
	return market.Tick{Pair: market.BTCUSD, Price: price, Time: time.Now()}
}

func feedPrices(s Strategy, prices []float64) []Advice {
	out := make([]Advice, 0, len(prices))
	for _, p := range prices {
		out = append(out, s.Update(tick(p)))
	}
	return out
}

func TestMACrossSignalsOnUpwardCross(t *testing.T) {
	t.Parallel()

	s := NewMACross(market.BTCUSD, 2, 4)

	// Falling prices warm up with fast below slow, then a sharp rally
	// forces the fast MA through the slow MA exactly once.
	prices := []float64{110, 108, 106, 104, 102, 100, 120, 140, 160}
	advice := feedPrices(s, prices)

	var buys, sells int
	for _, a := range advice {
		switch a.Signal {
		case Buy:
			buys++
		case Sell:
			sells++
		}
	}
	require.Equal(t, 1, buys)
	assert.Zero(t, sells)
}

func TestMACrossSignalsOnDownwardCross(t *testing.T) {
	t.Parallel()

	s := NewMACross(market.BTCUSD, 2, 4)

	prices := []float64{100, 102, 104, 106, 108, 110, 90, 70, 50}
	advice := feedPrices(s, prices)

	var sells int
	for _, a := range advice {
		if a.Signal == Sell {
			sells++
		}
	}
	assert.Equal(t, 1, sells)
}

func TestMACrossHoldsDuringWarmupAndSteadyTrend(t *testing.T) {
	t.Parallel()

	s := NewMACross(market.BTCUSD, 2, 4)

	// Monotone series: fast stays above slow after warmup, no fresh cross.
	for i, p := range []float64{100, 101, 102, 103} {
		a := s.Update(tick(p))
		assert.Equal(t, Hold, a.Signal, "tick %d should hold during warmup", i)
	}
}

func TestMACrossIgnoresOtherPairs(t *testing.T) {
	t.Parallel()

	s := NewMACross(market.BTCUSD, 2, 4)
	a := s.Update(market.Tick{Pair: market.ETHUSD, Price: 3000})
	assert.Equal(t, Hold, a.Signal)
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	assert.Contains(t, Names(), "noop")
	assert.Contains(t, Names(), "ma-cross")

	s, err := ByName("NOOP", market.SOLUSD)
	require.NoError(t, err)
	assert.Equal(t, "noop", s.Name())
	a := s.Update(market.Tick{Pair: market.SOLUSD, Price: 150})
	assert.Equal(t, Hold, a.Signal)

	_, err = ByName("does-not-exist", market.SOLUSD)
	assert.Error(t, err)
}
