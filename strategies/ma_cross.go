package strategies

import (
	"fmt"

	"github.com/ritvikindupuri/QuantamTrade/indicators"
	"github.com/ritvikindupuri/QuantamTrade/market"
)

// MACross advises on fast/slow simple-moving-average crossovers:
// buy when the fast MA crosses above the slow MA, sell when it crosses
// below. It only signals on the cross itself, never on the standing state.
type MACross struct {
	pair market.Pair

	fast *indicators.SimpleMA
	slow *indicators.SimpleMA

	lastDiff float64
	haveDiff bool
}

func NewMACross(pair market.Pair, fastPeriod, slowPeriod int) *MACross {
	return &MACross{
		pair: pair,
		fast: indicators.NewSMA(fastPeriod),
		slow: indicators.NewSMA(slowPeriod),
	}
}

func (s *MACross) Name() string {
	return fmt.Sprintf("ma-cross(%d,%d)", s.fast.Warmup(), s.slow.Warmup())
}

func (s *MACross) Reset() {
	s.fast.Reset()
	s.slow.Reset()
	s.lastDiff = 0
	s.haveDiff = false
}

func (s *MACross) Update(t market.Tick) Advice {
	hold := Advice{Signal: Hold, Pair: s.pair, Price: t.Price}
	if t.Pair != s.pair {
		return hold
	}

	s.fast.Update(t.Price)
	s.slow.Update(t.Price)
	if !s.fast.Ready() || !s.slow.Ready() {
		return hold
	}

	diff := s.fast.Value() - s.slow.Value()
	defer func() {
		s.lastDiff = diff
		s.haveDiff = true
	}()

	if !s.haveDiff {
		return hold
	}

	switch {
	case s.lastDiff <= 0 && diff > 0:
		return Advice{
			Signal:     Buy,
			Pair:       s.pair,
			Price:      t.Price,
			Confidence: 1,
			Reason:     "fast MA crossed above slow MA",
		}
	case s.lastDiff >= 0 && diff < 0:
		return Advice{
			Signal:     Sell,
			Pair:       s.pair,
			Price:      t.Price,
			Confidence: 1,
			Reason:     "fast MA crossed below slow MA",
		}
	}
	return hold
}

func init() {
	Register("ma-cross", func(pair market.Pair) Strategy { return NewMACross(pair, 5, 20) })
}
