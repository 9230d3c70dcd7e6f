package indicator

import "quantlab/internal/model"

// RSI computes the Relative Strength Index over day-over-day close deltas.
//
// The average gain/loss is the simple mean of the trailing period-window,
// NOT Wilder's exponential smoothing. This is a deliberate simplification
// of the classic recurrence; switching to Wilder's method would change
// every reported value, so the trailing-window regime is pinned by tests.
//
// Delta index i covers the move from close[i] to close[i+1], so the output
// is left-padded with one undefined position to realign with the price
// index: the first defined RSI sits at price index period.
func RSI(ps *model.PriceSeries, period int) *Series {
	n := ps.Len()
	out := newSeries(n)
	if n < period+1 {
		return out
	}

	gains := make([]float64, n-1)
	losses := make([]float64, n-1)
	for i := 1; i < n; i++ {
		delta := ps.Close(i) - ps.Close(i-1)
		if delta > 0 {
			gains[i-1] = delta
		} else {
			losses[i-1] = -delta
		}
	}

	for i := period - 1; i < len(gains); i++ {
		var avgGain, avgLoss float64
		for j := i - period + 1; j <= i; j++ {
			avgGain += gains[j]
			avgLoss += losses[j]
		}
		avgGain /= float64(period)
		avgLoss /= float64(period)

		value := 100.0
		if avgLoss != 0 {
			rs := avgGain / avgLoss
			value = 100.0 - 100.0/(1.0+rs)
		}
		out.set(i+1, value) // +1: realign delta index with price index
	}
	return out
}
