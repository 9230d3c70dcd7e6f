package indicator

import "quantlab/internal/model"

// MACD warm-ups in days: the line needs EMA26 (first valid index 25), the
// signal needs a further 9 MACD samples (first valid index 33).
const (
	macdWarmup   = 25
	signalWarmup = 33
	signalPeriod = 9
)

// MACD computes the MACD line (EMA12 − EMA26), its 9-period EMA signal
// line, and the histogram (MACD − signal) from precomputed EMAs.
func MACD(ps *model.PriceSeries, ema12, ema26 *Series) (line, signal, hist *Series) {
	n := ps.Len()
	line = newSeries(n)
	signal = newSeries(n)
	hist = newSeries(n)

	for i := macdWarmup; i < n; i++ {
		fast, _ := ema12.At(i)
		slow, _ := ema26.At(i)
		line.set(i, fast-slow)
	}

	// Signal line: seeded with a 9-sample SMA of MACD at index 33, EMA
	// recurrence afterwards.
	k := 2.0 / float64(signalPeriod+1)
	for i := signalWarmup; i < n; i++ {
		if i == signalWarmup {
			sum := 0.0
			for j := i - signalPeriod + 1; j <= i; j++ {
				sum += line.Value(j)
			}
			signal.set(i, sum/float64(signalPeriod))
			continue
		}
		prev, _ := signal.At(i - 1)
		signal.set(i, line.Value(i)*k+prev*(1-k))
	}

	// Histogram is defined wherever the signal is.
	for i := signalWarmup; i < n; i++ {
		hist.set(i, line.Value(i)-signal.Value(i))
	}

	return line, signal, hist
}
