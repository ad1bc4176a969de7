package indicators

import "fmt"

// MACD is a streaming Moving Average Convergence Divergence indicator with
// the conventional 12/26/9 structure. Value() is the histogram (macd line
// minus signal line).
type MACD struct {
	fast   *ExponentialMA
	slow   *ExponentialMA
	signal *ExponentialMA
}

func NewMACD(fastPeriod, slowPeriod, signalPeriod int) *MACD {
	return &MACD{
		fast:   NewEMA(fastPeriod),
		slow:   NewEMA(slowPeriod),
		signal: NewEMA(signalPeriod),
	}
}

// NewDefaultMACD returns the standard MACD(12, 26, 9).
func NewDefaultMACD() *MACD {
	return NewMACD(12, 26, 9)
}

func (m *MACD) Name() string {
	return fmt.Sprintf("MACD(%d,%d,%d)", m.fast.period, m.slow.period, m.signal.period)
}

func (m *MACD) Warmup() int {
	return m.slow.Warmup() + m.signal.Warmup()
}

func (m *MACD) Reset() {
	m.fast.Reset()
	m.slow.Reset()
	m.signal.Reset()
}

func (m *MACD) Update(price float64) {
	m.fast.Update(price)
	m.slow.Update(price)
	if m.fast.Ready() && m.slow.Ready() {
		m.signal.Update(m.fast.Value() - m.slow.Value())
	}
}

func (m *MACD) Ready() bool {
	return m.signal.Ready()
}

func (m *MACD) Value() float64 {
	if !m.Ready() {
		return 0
	}
	return m.Line() - m.Signal()
}

// Line is the macd line (fast EMA minus slow EMA).
func (m *MACD) Line() float64 {
	return m.fast.Value() - m.slow.Value()
}

// Signal is the EMA of the macd line.
func (m *MACD) Signal() float64 {
	return m.signal.Value()
}
