package indicators

import "fmt"

// RSI is a streaming Relative Strength Index with Wilder smoothing.
type RSI struct {
	period int

	prev     float64
	havePrev bool
	count    int

	avgGain float64
	avgLoss float64
}

func NewRSI(period int) *RSI {
	return &RSI{period: period}
}

func (r *RSI) Name() string {
	return fmt.Sprintf("RSI(%d)", r.period)
}

// Warmup is period+1: the first price only establishes the baseline.
func (r *RSI) Warmup() int {
	return r.period + 1
}

func (r *RSI) Reset() {
	r.prev = 0
	r.havePrev = false
	r.count = 0
	r.avgGain = 0
	r.avgLoss = 0
}

func (r *RSI) Update(price float64) {
	if !r.havePrev {
		r.prev = price
		r.havePrev = true
		return
	}

	change := price - r.prev
	r.prev = price

	gain, loss := 0.0, 0.0
	if change > 0 {
		gain = change
	} else {
		loss = -change
	}

	if r.count < r.period {
		// Seed the averages with a plain mean over the first period changes.
		r.avgGain += gain
		r.avgLoss += loss
		r.count++
		if r.count == r.period {
			r.avgGain /= float64(r.period)
			r.avgLoss /= float64(r.period)
		}
		return
	}

	// Wilder smoothing thereafter.
	r.avgGain = (r.avgGain*float64(r.period-1) + gain) / float64(r.period)
	r.avgLoss = (r.avgLoss*float64(r.period-1) + loss) / float64(r.period)
}

func (r *RSI) Ready() bool {
	return r.count >= r.period
}

func (r *RSI) Value() float64 {
	if !r.Ready() {
		return 0
	}
	if r.avgLoss == 0 {
		return 100
	}
	rs := r.avgGain / r.avgLoss
	return 100 - 100/(1+rs)
}
