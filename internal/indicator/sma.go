package indicator

import (
	"fmt"

	"quantlab/internal/model"
)

// SMA computes a Simple Moving Average of the closing prices.
// The first period-1 positions are undefined. Maintains a rolling window
// sum, so the whole series is O(N).
func SMA(ps *model.PriceSeries, period int) (*Series, error) {
	if period != 20 && period != 50 {
		return nil, fmt.Errorf("%w: SMA %d", ErrUnsupportedPeriod, period)
	}
	return rollingMean(ps, period), nil
}

// rollingMean is the unrestricted SMA kernel shared with the EMA seed and
// Bollinger middle band.
func rollingMean(ps *model.PriceSeries, period int) *Series {
	out := newSeries(ps.Len())
	sum := 0.0
	for i := 0; i < ps.Len(); i++ {
		sum += ps.Close(i)
		if i >= period {
			sum -= ps.Close(i - period)
		}
		if i >= period-1 {
			out.set(i, sum/float64(period))
		}
	}
	return out
}
