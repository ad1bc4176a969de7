// Package market defines the tradable pair set and price tick plumbing.
package market

import (
	"fmt"
	"sort"
)

// Pair identifies a tradable pair, e.g. "BTC/USD".
type Pair string

const (
	BTCUSD Pair = "BTC/USD"
	ETHUSD Pair = "ETH/USD"
	SOLUSD Pair = "SOL/USD"
)

// PairMeta carries per-pair configuration. Adding a pair to the platform is
// a change to the Pairs map, nowhere else.
type PairMeta struct {
	Name              Pair
	BaseCurrency      string
	QuoteCurrency     string
	QuantityPrecision int
	MinimumQuantity   float64
	ReferencePrice    float64 // starting point for the synthetic feed
}

var Pairs = map[Pair]PairMeta{
	BTCUSD: {
		Name:              BTCUSD,
		BaseCurrency:      "BTC",
		QuoteCurrency:     "USD",
		QuantityPrecision: 8,
		MinimumQuantity:   0.0001,
		ReferencePrice:    50000,
	},
	ETHUSD: {
		Name:              ETHUSD,
		BaseCurrency:      "ETH",
		QuoteCurrency:     "USD",
		QuantityPrecision: 8,
		MinimumQuantity:   0.001,
		ReferencePrice:    3000,
	},
	SOLUSD: {
		Name:              SOLUSD,
		BaseCurrency:      "SOL",
		QuoteCurrency:     "USD",
		QuantityPrecision: 6,
		MinimumQuantity:   0.01,
		ReferencePrice:    150,
	},
}

// Known reports whether p is part of the configured pair set.
func Known(p Pair) bool {
	_, ok := Pairs[p]
	return ok
}

// ParsePair validates a raw string against the configured pair set.
func ParsePair(s string) (Pair, error) {
	p := Pair(s)
	if !Known(p) {
		return "", fmt.Errorf("unknown pair %q", s)
	}
	return p, nil
}

// AllPairs returns the configured pairs in a stable order.
func AllPairs() []Pair {
	out := make([]Pair, 0, len(Pairs))
	for p := range Pairs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
