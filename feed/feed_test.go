package feed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ritvikindupuri/QuantamTrade/market"
)

func TestRandomWalkStartsAtReferencePrices(t *testing.T) {
	t.Parallel()

	w := NewRandomWalk(1, DefaultStep, nil)
	prices := w.Prices()
	require.Len(t, prices, len(market.AllPairs()))
	for p, px := range prices {
		assert.InDelta(t, market.Pairs[p].ReferencePrice, px, 1e-9)
	}
}

func TestRandomWalkIsDeterministicPerSeed(t *testing.T) {
	t.Parallel()

	a := NewRandomWalk(42, DefaultStep, []market.Pair{market.BTCUSD})
	b := NewRandomWalk(42, DefaultStep, []market.Pair{market.BTCUSD})

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestRandomWalkStaysPositiveAndBounded(t *testing.T) {
	t.Parallel()

	w := NewRandomWalk(7, DefaultStep, []market.Pair{market.BTCUSD})
	last := w.Prices()[market.BTCUSD]
	for i := 0; i < 1000; i++ {
		px := w.Next()[market.BTCUSD]
		assert.Greater(t, px, 0.0)
		// One step moves at most step/2 of the current level.
		assert.LessOrEqual(t, px, last*(1+DefaultStep/2))
		assert.GreaterOrEqual(t, px, last*(1-DefaultStep/2))
		last = px
	}
}

func TestRandomWalkRunStopsWithContext(t *testing.T) {
	t.Parallel()

	w := NewRandomWalk(1, DefaultStep, []market.Pair{market.SOLUSD})
	ctx, cancel := context.WithCancel(context.Background())

	var calls int
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Run(ctx, time.Millisecond, func(prices map[market.Pair]float64) {
			calls++
			if calls >= 3 {
				cancel()
			}
		})
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
	assert.GreaterOrEqual(t, calls, 3)
}
