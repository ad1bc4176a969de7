// Package strategies defines the signal-producer interface the engine
// consumes, and a registry of built-in strategies. The engine never reaches
// into strategy internals; it only acts on the advice they emit.
package strategies

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ritvikindupuri/QuantamTrade/market"
)

type Signal int

const (
	Hold Signal = iota
	Buy
	Sell
)

func (s Signal) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return "HOLD"
	}
}

// Advice is one strategy decision for one pair at one price. Confidence is
// in [0, 1]; a Hold advice carries no obligation to act.
type Advice struct {
	Signal     Signal
	Pair       market.Pair
	Price      float64
	Confidence float64
	Reason     string
}

// Strategy consumes a tick stream for a single pair and emits advice.
type Strategy interface {
	Name() string
	Reset()
	Update(t market.Tick) Advice
}

// Factory builds a strategy bound to one pair.
type Factory func(pair market.Pair) Strategy

var registry = make(map[string]Factory)

func Register(name string, f Factory) {
	registry[strings.ToLower(name)] = f
}

// ByName builds the named strategy for a pair.
func ByName(name string, pair market.Pair) (Strategy, error) {
	f, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q (supported: %s)", name, strings.Join(Names(), ", "))
	}
	return f(pair), nil
}

// Names lists registered strategies in a stable order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
