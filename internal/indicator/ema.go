package indicator

import (
	"fmt"

	"quantlab/internal/model"
)

// EMA computes an Exponential Moving Average of the closing prices.
// The value at index period-1 is seeded with the simple mean of the first
// period closes; later values follow the recurrence
//
//	EMA[i] = close[i]*k + EMA[i-1]*(1-k),  k = 2/(period+1)
func EMA(ps *model.PriceSeries, period int) (*Series, error) {
	if period != 12 && period != 26 {
		return nil, fmt.Errorf("%w: EMA %d", ErrUnsupportedPeriod, period)
	}

	out := newSeries(ps.Len())
	k := 2.0 / float64(period+1)

	sum := 0.0
	for i := 0; i < ps.Len(); i++ {
		if i < period-1 {
			sum += ps.Close(i)
			continue
		}
		if i == period-1 {
			sum += ps.Close(i)
			out.set(i, sum/float64(period))
			continue
		}
		prev, _ := out.At(i - 1)
		out.set(i, ps.Close(i)*k+prev*(1-k))
	}
	return out, nil
}
