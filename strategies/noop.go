package strategies

import "github.com/ritvikindupuri/QuantamTrade/market"

// Noop always holds. Useful for feed-only sessions.
type Noop struct {
	pair market.Pair
}

func NewNoop(pair market.Pair) *Noop {
	return &Noop{pair: pair}
}

func (*Noop) Name() string { return "noop" }

func (*Noop) Reset() {}

func (s *Noop) Update(t market.Tick) Advice {
	return Advice{Signal: Hold, Pair: s.pair, Price: t.Price}
}

func init() {
	Register("noop", func(pair market.Pair) Strategy { return NewNoop(pair) })
}
