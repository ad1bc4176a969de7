// Package feed produces synthetic prices for the simulated session. The
// engine treats the feed as an external collaborator; nothing here touches
// portfolio state.
package feed

import (
	"context"
	"math/rand"
	"time"

	"github.com/ritvikindupuri/QuantamTrade/market"
)

// DefaultStep is the per-tick price step fraction: each tick moves a pair's
// price by a uniform amount in (-step/2, +step/2) of its current level.
const DefaultStep = 0.002

// RandomWalk is a seeded multiplicative random walk over a set of pairs,
// starting from each pair's reference price.
type RandomWalk struct {
	rng    *rand.Rand
	step   float64
	pairs  []market.Pair
	prices map[market.Pair]float64
}

func NewRandomWalk(seed int64, step float64, pairs []market.Pair) *RandomWalk {
	if step <= 0 {
		step = DefaultStep
	}
	if len(pairs) == 0 {
		pairs = market.AllPairs()
	}

	prices := make(map[market.Pair]float64, len(pairs))
	for _, p := range pairs {
		prices[p] = market.Pairs[p].ReferencePrice
	}

	return &RandomWalk{
		rng:    rand.New(rand.NewSource(seed)),
		step:   step,
		pairs:  pairs,
		prices: prices,
	}
}

// Next advances every pair one step and returns the full price map. The
// returned map is a copy; callers may keep it.
func (w *RandomWalk) Next() map[market.Pair]float64 {
	out := make(map[market.Pair]float64, len(w.pairs))
	for _, p := range w.pairs {
		px := w.prices[p] * (1 + (w.rng.Float64()-0.5)*w.step)
		w.prices[p] = px
		out[p] = px
	}
	return out
}

// Prices returns the current price map without advancing the walk.
func (w *RandomWalk) Prices() map[market.Pair]float64 {
	out := make(map[market.Pair]float64, len(w.prices))
	for p, px := range w.prices {
		out[p] = px
	}
	return out
}

// Run drives fn with a fresh price map every interval until ctx ends.
func (w *RandomWalk) Run(ctx context.Context, interval time.Duration, fn func(map[market.Pair]float64)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn(w.Next())
		}
	}
}
