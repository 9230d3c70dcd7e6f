package indicator

import (
	"math"

	"quantlab/internal/model"
)

// BollingerBands computes the middle band (SMA of closes over period) and
// the upper/lower bands at width standard deviations. Uses the population
// standard deviation of the window, matching the middle-band mean.
func BollingerBands(ps *model.PriceSeries, period int, width float64) (upper, middle, lower *Series) {
	n := ps.Len()
	upper = newSeries(n)
	middle = newSeries(n)
	lower = newSeries(n)

	for i := period - 1; i < n; i++ {
		sum := 0.0
		for j := i - period + 1; j <= i; j++ {
			sum += ps.Close(j)
		}
		mean := sum / float64(period)

		variance := 0.0
		for j := i - period + 1; j <= i; j++ {
			diff := ps.Close(j) - mean
			variance += diff * diff
		}
		stddev := math.Sqrt(variance / float64(period))

		middle.set(i, mean)
		upper.set(i, mean+width*stddev)
		lower.set(i, mean-width*stddev)
	}
	return upper, middle, lower
}
