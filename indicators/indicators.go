// Package indicators provides streaming technical indicators over a price
// series. They are deterministic and usable in live and simulated sessions.
package indicators

// Indicator computes a single streaming value from a price series.
type Indicator interface {
	// Name returns a stable identifier like "SMA(20)" or "RSI(14)".
	Name() string

	// Warmup returns how many updates are needed before Ready() can be true.
	Warmup() int

	// Reset clears all internal state.
	Reset()

	// Update consumes the next price.
	Update(price float64)

	// Ready reports whether Value() is meaningful.
	Ready() bool

	// Value returns the current indicator value. Callers should check
	// Ready() first; before warmup the value is 0.
	Value() float64
}
