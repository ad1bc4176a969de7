package indicators

import "fmt"

// SimpleMA is a streaming Simple Moving Average.
type SimpleMA struct {
	period int
	prices []float64
}

func NewSMA(period int) *SimpleMA {
	return &SimpleMA{
		period: period,
		prices: make([]float64, 0, period),
	}
}

func (m *SimpleMA) Name() string {
	return fmt.Sprintf("SMA(%d)", m.period)
}

func (m *SimpleMA) Warmup() int {
	return m.period
}

func (m *SimpleMA) Reset() {
	m.prices = m.prices[:0]
}

func (m *SimpleMA) Update(price float64) {
	m.prices = append(m.prices, price)
	if len(m.prices) > m.period {
		m.prices = m.prices[1:]
	}
}

func (m *SimpleMA) Ready() bool {
	return len(m.prices) >= m.period
}

func (m *SimpleMA) Value() float64 {
	if !m.Ready() {
		return 0
	}
	sum := 0.0
	for _, p := range m.prices {
		sum += p
	}
	return sum / float64(len(m.prices))
}

// ExponentialMA is a streaming Exponential Moving Average seeded with an SMA
// over the warmup window.
type ExponentialMA struct {
	period     int
	multiplier float64
	ema        float64
	count      int
	warmupSum  float64
}

func NewEMA(period int) *ExponentialMA {
	return &ExponentialMA{
		period:     period,
		multiplier: 2.0 / float64(period+1),
	}
}

func (e *ExponentialMA) Name() string {
	return fmt.Sprintf("EMA(%d)", e.period)
}

func (e *ExponentialMA) Warmup() int {
	return e.period
}

func (e *ExponentialMA) Reset() {
	e.ema = 0
	e.count = 0
	e.warmupSum = 0
}

func (e *ExponentialMA) Update(price float64) {
	if e.count < e.period {
		e.warmupSum += price
		e.count++
		if e.count == e.period {
			e.ema = e.warmupSum / float64(e.period)
		}
		return
	}
	e.ema = (price-e.ema)*e.multiplier + e.ema
}

func (e *ExponentialMA) Ready() bool {
	return e.count >= e.period
}

func (e *ExponentialMA) Value() float64 {
	if !e.Ready() {
		return 0
	}
	return e.ema
}
