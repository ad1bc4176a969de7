// Package risk provides pure performance and risk metrics computed over
// price, return, and equity series. Nothing here touches portfolio state.
package risk

import (
	"errors"
	"fmt"
	"math"
)

// TradingDaysPerYear is the canonical annualization factor.
const TradingDaysPerYear = 252

// DefaultRiskFreeRate is the annual risk-free rate used when callers have no
// better number.
const DefaultRiskFreeRate = 0.02

var (
	ErrNotEnoughData = errors.New("not enough data")
	ErrZeroStdDev    = errors.New("zero standard deviation")
)

// AnnualizedVolatility computes the volatility of the log-return series of
// prices, annualized by periodsPerYear. It needs at least two prices.
func AnnualizedVolatility(prices []float64, periodsPerYear int) (float64, error) {
	if len(prices) < 2 {
		return 0, fmt.Errorf("volatility: need at least 2 prices, got %d: %w", len(prices), ErrNotEnoughData)
	}
	if periodsPerYear <= 0 {
		return 0, fmt.Errorf("volatility: periods per year must be positive, got %d", periodsPerYear)
	}

	returns := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] <= 0 || prices[i] <= 0 {
			return 0, fmt.Errorf("volatility: non-positive price at index %d", i)
		}
		returns = append(returns, math.Log(prices[i]/prices[i-1]))
	}

	variance := variance(returns)
	return math.Sqrt(variance * float64(periodsPerYear)), nil
}

// SharpeRatio computes the annualized Sharpe ratio of a per-period return
// series against an annual risk-free rate: mean excess return over the
// standard deviation of the excess-return series, scaled by sqrt(ppy).
func SharpeRatio(returns []float64, riskFreeRate float64, periodsPerYear int) (float64, error) {
	if len(returns) == 0 {
		return 0, fmt.Errorf("sharpe: empty return series: %w", ErrNotEnoughData)
	}
	if periodsPerYear <= 0 {
		return 0, fmt.Errorf("sharpe: periods per year must be positive, got %d", periodsPerYear)
	}

	perPeriodRF := riskFreeRate / float64(periodsPerYear)
	excess := make([]float64, len(returns))
	for i, r := range returns {
		excess[i] = r - perPeriodRF
	}

	m := mean(excess)
	sd := math.Sqrt(variance(excess))
	if sd == 0 {
		return 0, fmt.Errorf("sharpe: %w", ErrZeroStdDev)
	}

	return math.Sqrt(float64(periodsPerYear)) * m / sd, nil
}

// MaxDrawdown returns the largest peak-to-trough decline of an equity curve
// as a fraction of the peak. A single-point or non-decreasing curve has a
// drawdown of 0.
func MaxDrawdown(equity []float64) float64 {
	if len(equity) == 0 {
		return 0
	}

	maxDD := 0.0
	peak := equity[0]
	for _, v := range equity {
		if v > peak {
			peak = v
		}
		if peak <= 0 {
			continue
		}
		if dd := (peak - v) / peak; dd > maxDD {
			maxDD = dd
		}
	}
	return maxDD
}

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// variance is the population variance (divisor N), matching the reference
// numbers this engine is validated against.
func variance(xs []float64) float64 {
	m := mean(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return sum / float64(len(xs))
}
