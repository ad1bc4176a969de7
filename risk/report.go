package risk

// Metrics bundles the standard performance numbers for one equity curve.
type Metrics struct {
	SharpeRatio float64
	MaxDrawdown float64
	Volatility  float64
}

// Report derives per-period simple returns from an equity curve and computes
// the metric set with the canonical defaults. Metrics that are undefined for
// the given curve (too short, zero variance) are reported as 0.
func Report(equity []float64) Metrics {
	var m Metrics
	m.MaxDrawdown = MaxDrawdown(equity)

	if len(equity) < 2 {
		return m
	}

	returns := make([]float64, 0, len(equity)-1)
	for i := 1; i < len(equity); i++ {
		if equity[i-1] == 0 {
			continue
		}
		returns = append(returns, equity[i]/equity[i-1]-1)
	}

	if v, err := AnnualizedVolatility(equity, TradingDaysPerYear); err == nil {
		m.Volatility = v
	}
	if s, err := SharpeRatio(returns, DefaultRiskFreeRate, TradingDaysPerYear); err == nil {
		m.SharpeRatio = s
	}
	return m
}
