package indicator

import "quantlab/internal/model"

// Momentum computes the percentage change of the close versus the close
// period days earlier:
//
//	100 * (close[i] - close[i-period]) / close[i-period]
//
// The first period positions are undefined, as is any position whose base
// price is zero (the division would otherwise produce Inf/NaN).
func Momentum(ps *model.PriceSeries, period int) *Series {
	out := newSeries(ps.Len())
	for i := period; i < ps.Len(); i++ {
		base := ps.Close(i - period)
		if base == 0 {
			continue
		}
		out.set(i, 100*(ps.Close(i)-base)/base)
	}
	return out
}
