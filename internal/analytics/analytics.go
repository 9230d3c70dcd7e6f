// Package analytics computes return and risk statistics from a daily price
// series: daily/cumulative returns, annualized volatility, Sharpe ratio,
// and maximum drawdown.
//
// Failures are value-level: degenerate inputs (too few points, zero-price
// denominators) yield zeros or skipped entries, never errors or NaN/Inf.
package analytics

import (
	"math"

	"quantlab/internal/model"
)

// TradingDays is the annualization constant for daily data.
const TradingDays = 252

// DefaultRiskFreeRate is the fractional annual risk-free rate used when the
// caller does not supply one (0.02 = 2%).
const DefaultRiskFreeRate = 0.02

// DailyReturns produces day-over-day percentage returns of the closes.
// Days whose previous close is zero are skipped, so the result may be
// shorter than N-1.
func DailyReturns(ps *model.PriceSeries) []float64 {
	var returns []float64
	for i := 1; i < ps.Len(); i++ {
		prev := ps.Close(i - 1)
		if prev == 0 {
			continue
		}
		returns = append(returns, 100*(ps.Close(i)-prev)/prev)
	}
	return returns
}

// CumulativeReturn is the percentage change from the first close to the
// last. Returns 0 for fewer than two bars or a zero first close.
func CumulativeReturn(ps *model.PriceSeries) float64 {
	if ps.Len() < 2 {
		return 0
	}
	first := ps.Close(0)
	if first == 0 {
		return 0
	}
	last := ps.Close(ps.Len() - 1)
	return 100 * (last - first) / first
}

// Volatility is the population standard deviation of the returns scaled by
// sqrt(252) trading days. Returns 0 for fewer than two values.
func Volatility(returns []float64) float64 {
	if len(returns) < 2 {
		return 0
	}
	return stdDev(returns) * math.Sqrt(TradingDays)
}

// SharpeRatio is (annualized mean return - riskFreeRate) / volatility.
// Returns 0 for fewer than two returns or zero volatility.
//
// The mean return is in raw percentage units while riskFreeRate is a
// fraction (0.02 = 2%). The unit mismatch is inherited behavior and kept
// verbatim — rescaling would change the reported magnitude and every
// fixture built against the original formula.
func SharpeRatio(returns []float64, riskFreeRate float64) float64 {
	if len(returns) < 2 {
		return 0
	}
	vol := Volatility(returns)
	if vol == 0 {
		return 0
	}
	annualized := mean(returns) * TradingDays
	return (annualized - riskFreeRate) / vol
}

// MaxDrawdown is the largest peak-to-trough percentage decline of the
// closes. The peak only ratchets upward; the result is non-negative and
// zero for a monotonically non-decreasing series.
func MaxDrawdown(ps *model.PriceSeries) float64 {
	if ps.Len() < 2 {
		return 0
	}
	maxDD := 0.0
	peak := ps.Close(0)
	for i := 1; i < ps.Len(); i++ {
		price := ps.Close(i)
		if price > peak {
			peak = price
		}
		if peak == 0 {
			continue
		}
		dd := 100 * (peak - price) / peak
		if dd > maxDD {
			maxDD = dd
		}
	}
	return maxDD
}

func mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// stdDev uses population variance (divide by n, not n-1).
func stdDev(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	m := mean(data)
	variance := 0.0
	for _, v := range data {
		diff := v - m
		variance += diff * diff
	}
	variance /= float64(len(data))
	return math.Sqrt(variance)
}
