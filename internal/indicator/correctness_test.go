package indicator

import (
	"errors"
	"math"
	"testing"

	"quantlab/internal/model"
)

// ────────────────────────────────────────────────────────────
// Helpers
// ────────────────────────────────────────────────────────────

func series(t *testing.T, closes []float64) *model.PriceSeries {
	t.Helper()
	bars := make([]model.Bar, len(closes))
	for i, c := range closes {
		low := c - 1
		if low < 0 {
			low = 0
		}
		bars[i] = model.Bar{
			Date:   dateFor(i),
			Open:   c,
			High:   c + 1,
			Low:    low,
			Close:  c,
			Volume: 1000,
		}
	}
	ps, err := model.NewPriceSeries("TEST", "Test Instrument", bars)
	if err != nil {
		t.Fatalf("series: %v", err)
	}
	return ps
}

// dateFor produces strictly increasing synthetic dates ("2024-001" style is
// fine — ordering is lexicographic).
func dateFor(i int) string {
	return "2024-" + string(rune('0'+i/100%10)) + string(rune('0'+i/10%10)) + string(rune('0'+i%10))
}

func linearCloses(n int) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = float64(i + 1)
	}
	return closes
}

func flatCloses(n int, v float64) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = v
	}
	return closes
}

func assertClose(t *testing.T, label string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s: got %.6f, want %.6f (diff=%.6f)", label, got, want, math.Abs(got-want))
	}
}

func assertUndefined(t *testing.T, label string, s *Series, i int) {
	t.Helper()
	if v, ok := s.At(i); ok {
		t.Errorf("%s: index %d expected undefined, got %.4f", label, i, v)
	}
}

func assertDefined(t *testing.T, label string, s *Series, i int, want, tol float64) {
	t.Helper()
	v, ok := s.At(i)
	if !ok {
		t.Fatalf("%s: index %d expected defined", label, i)
	}
	assertClose(t, label, v, want, tol)
}

// ────────────────────────────────────────────────────────────
// SMA
// ────────────────────────────────────────────────────────────

func TestSMA_WarmupAndValues(t *testing.T) {
	// closes 1..60: SMA20[i] = mean(closes[i-19..i]).
	ps := series(t, linearCloses(60))

	sma, err := SMA(ps, 20)
	if err != nil {
		t.Fatalf("SMA(20): %v", err)
	}

	for i := 0; i < 19; i++ {
		assertUndefined(t, "SMA20 warm-up", sma, i)
	}
	// mean(1..20) = 10.5, mean(41..60) = 50.5
	assertDefined(t, "SMA20[19]", sma, 19, 10.5, 1e-9)
	assertDefined(t, "SMA20[59]", sma, 59, 50.5, 1e-9)

	sma50, err := SMA(ps, 50)
	if err != nil {
		t.Fatalf("SMA(50): %v", err)
	}
	for i := 0; i < 49; i++ {
		assertUndefined(t, "SMA50 warm-up", sma50, i)
	}
	// mean(1..50) = 25.5
	assertDefined(t, "SMA50[49]", sma50, 49, 25.5, 1e-9)
}

func TestSMA_RollingWindowMatchesDirectMean(t *testing.T) {
	closes := []float64{10, 12, 9, 14, 11, 13, 8, 15, 10, 12,
		14, 9, 11, 16, 13, 10, 12, 15, 9, 14, 11, 13, 12, 10, 15}
	ps := series(t, closes)

	sma, err := SMA(ps, 20)
	if err != nil {
		t.Fatalf("SMA(20): %v", err)
	}
	for i := 19; i < len(closes); i++ {
		sum := 0.0
		for j := i - 19; j <= i; j++ {
			sum += closes[j]
		}
		assertDefined(t, "SMA20 rolling", sma, i, sum/20, 1e-9)
	}
}

func TestSMA_UnsupportedPeriod(t *testing.T) {
	ps := series(t, linearCloses(30))
	if _, err := SMA(ps, 10); !errors.Is(err, ErrUnsupportedPeriod) {
		t.Errorf("SMA(10): want ErrUnsupportedPeriod, got %v", err)
	}
}

func TestSMA_SeriesShorterThanPeriod(t *testing.T) {
	ps := series(t, linearCloses(10))
	sma, err := SMA(ps, 20)
	if err != nil {
		t.Fatalf("SMA(20): %v", err)
	}
	for i := 0; i < ps.Len(); i++ {
		assertUndefined(t, "short series", sma, i)
	}
}

// ────────────────────────────────────────────────────────────
// EMA
// ────────────────────────────────────────────────────────────

func TestEMA_SeedEqualsSMA(t *testing.T) {
	ps := series(t, linearCloses(30))

	ema, err := EMA(ps, 12)
	if err != nil {
		t.Fatalf("EMA(12): %v", err)
	}
	for i := 0; i < 11; i++ {
		assertUndefined(t, "EMA12 warm-up", ema, i)
	}
	// Seed: mean(1..12) = 6.5
	assertDefined(t, "EMA12 seed", ema, 11, 6.5, 1e-9)

	// First recurrence step: 13*k + 6.5*(1-k), k = 2/13 → exactly 7.5
	assertDefined(t, "EMA12[12]", ema, 12, 7.5, 1e-9)
}

func TestEMA_Recurrence(t *testing.T) {
	closes := linearCloses(40)
	ps := series(t, closes)

	ema, err := EMA(ps, 26)
	if err != nil {
		t.Fatalf("EMA(26): %v", err)
	}
	// Seed: mean(1..26) = 13.5
	assertDefined(t, "EMA26 seed", ema, 25, 13.5, 1e-9)

	k := 2.0 / 27.0
	prev := 13.5
	for i := 26; i < 40; i++ {
		prev = closes[i]*k + prev*(1-k)
		assertDefined(t, "EMA26 recurrence", ema, i, prev, 1e-9)
	}
}

func TestEMA_UnsupportedPeriod(t *testing.T) {
	ps := series(t, linearCloses(30))
	if _, err := EMA(ps, 9); !errors.Is(err, ErrUnsupportedPeriod) {
		t.Errorf("EMA(9): want ErrUnsupportedPeriod, got %v", err)
	}
}

// ────────────────────────────────────────────────────────────
// MACD
// ────────────────────────────────────────────────────────────

func TestMACD_WarmupsAndContract(t *testing.T) {
	ps := series(t, linearCloses(60))
	b := ComputeAll(ps)

	for i := 0; i < 25; i++ {
		assertUndefined(t, "MACD warm-up", b.MACD, i)
	}
	for i := 25; i < 60; i++ {
		fast, _ := b.EMA12.At(i)
		slow, _ := b.EMA26.At(i)
		assertDefined(t, "MACD line", b.MACD, i, fast-slow, 1e-9)
	}

	for i := 0; i < 33; i++ {
		assertUndefined(t, "signal warm-up", b.MACDSignal, i)
		assertUndefined(t, "histogram warm-up", b.MACDHist, i)
	}

	// Signal seed at 33: 9-sample SMA of MACD[25..33].
	sum := 0.0
	for j := 25; j <= 33; j++ {
		sum += b.MACD.Value(j)
	}
	assertDefined(t, "signal seed", b.MACDSignal, 33, sum/9, 1e-9)

	// Recurrence and histogram from 34 on.
	k := 2.0 / 10.0
	prev := sum / 9
	for i := 34; i < 60; i++ {
		prev = b.MACD.Value(i)*k + prev*(1-k)
		assertDefined(t, "signal recurrence", b.MACDSignal, i, prev, 1e-9)
		assertDefined(t, "histogram", b.MACDHist, i, b.MACD.Value(i)-prev, 1e-9)
	}
}

// ────────────────────────────────────────────────────────────
// Bollinger Bands
// ────────────────────────────────────────────────────────────

func TestBollinger_FlatSeriesHasZeroWidth(t *testing.T) {
	ps := series(t, flatCloses(30, 100))
	upper, middle, lower := BollingerBands(ps, 20, 2.0)

	for i := 0; i < 19; i++ {
		assertUndefined(t, "bollinger warm-up", middle, i)
	}
	for i := 19; i < 30; i++ {
		assertDefined(t, "bollinger middle", middle, i, 100, 1e-9)
		assertDefined(t, "bollinger upper", upper, i, 100, 1e-9)
		assertDefined(t, "bollinger lower", lower, i, 100, 1e-9)
	}
}

func TestBollinger_HandCalculated(t *testing.T) {
	// closes 1,2,3,4 with period 4:
	// mean = 2.5; population variance = (2.25+0.25+0.25+2.25)/4 = 1.25
	// stddev = sqrt(1.25) ≈ 1.118034
	ps := series(t, []float64{1, 2, 3, 4})
	upper, middle, lower := BollingerBands(ps, 4, 2.0)

	std := math.Sqrt(1.25)
	assertDefined(t, "middle[3]", middle, 3, 2.5, 1e-9)
	assertDefined(t, "upper[3]", upper, 3, 2.5+2*std, 1e-9)
	assertDefined(t, "lower[3]", lower, 3, 2.5-2*std, 1e-9)
}

// ────────────────────────────────────────────────────────────
// Momentum
// ────────────────────────────────────────────────────────────

func TestMomentum_WarmupAndValues(t *testing.T) {
	ps := series(t, linearCloses(30))
	mom := Momentum(ps, 10)

	for i := 0; i < 10; i++ {
		assertUndefined(t, "momentum warm-up", mom, i)
	}
	// momentum[10] = 100*(11-1)/1 = 1000; momentum[11] = 100*(12-2)/2 = 500
	assertDefined(t, "momentum[10]", mom, 10, 1000, 1e-9)
	assertDefined(t, "momentum[11]", mom, 11, 500, 1e-9)
}

func TestMomentum_ZeroBasePriceIsUndefined(t *testing.T) {
	// A zero close at index 5 must not produce Inf/NaN when it becomes the
	// divisor ten days later.
	closes := linearCloses(30)
	closes[5] = 0
	ps := series(t, closes)

	mom := Momentum(ps, 10)
	assertUndefined(t, "momentum zero base", mom, 15)
	for i := 10; i < 30; i++ {
		if v, ok := mom.At(i); ok && (math.IsNaN(v) || math.IsInf(v, 0)) {
			t.Errorf("momentum[%d] = %v, want finite", i, v)
		}
	}
}

// ────────────────────────────────────────────────────────────
// RSI
//
// The average gain/loss is the simple mean of the trailing 14-delta window
// rather than Wilder's exponential smoothing; these fixtures pin that
// regime.
// ────────────────────────────────────────────────────────────

func TestRSI_AllGainsIsHundred(t *testing.T) {
	ps := series(t, linearCloses(40))
	rsi := RSI(ps, 14)

	// One leading pad plus 13 warm-up deltas: indices 0..13 undefined.
	for i := 0; i <= 13; i++ {
		assertUndefined(t, "RSI warm-up", rsi, i)
	}
	for i := 14; i < 40; i++ {
		assertDefined(t, "RSI all gains", rsi, i, 100, 1e-9)
	}
}

func TestRSI_BalancedGainsAndLosses(t *testing.T) {
	// Alternating +1/-1 closes: every trailing window has equal average
	// gain and loss, so RS = 1 and RSI = 50.
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 100 + float64(i%2)
	}
	ps := series(t, closes)
	rsi := RSI(ps, 14)

	for i := 14; i < 40; i++ {
		assertDefined(t, "RSI balanced", rsi, i, 50, 1e-9)
	}
}

func TestRSI_TrailingWindowRegime(t *testing.T) {
	// One early spike followed by a long flat stretch. Under the
	// trailing-window mean the spike falls out of the window entirely;
	// Wilder's smoothing would keep decaying influence forever.
	closes := flatCloses(40, 100)
	closes[1] = 110
	closes[2] = 100
	ps := series(t, closes)
	rsi := RSI(ps, 14)

	// Deltas: +10, -10, then all zeros. At price index 14 the window holds
	// both deltas (RSI 50); at 15 the gain has been evicted but the loss
	// remains (RSI 0); from 16 on the window is all zeros, so avgLoss = 0
	// → RSI = 100 by the degenerate-loss rule.
	assertDefined(t, "RSI[14] both in window", rsi, 14, 50, 1e-9)
	assertDefined(t, "RSI[15] loss only", rsi, 15, 0, 1e-9)
	assertDefined(t, "RSI[16] spike evicted", rsi, 16, 100, 1e-9)
	assertDefined(t, "RSI[20] flat tail", rsi, 20, 100, 1e-9)
}

func TestRSI_RangeInvariant(t *testing.T) {
	closes := []float64{50, 48, 53, 51, 49, 55, 52, 57, 54, 58,
		56, 60, 57, 62, 59, 64, 61, 65, 63, 67, 64, 69, 66, 70, 68}
	ps := series(t, closes)
	rsi := RSI(ps, 14)

	for i := 0; i < ps.Len(); i++ {
		if v, ok := rsi.At(i); ok && (v < 0 || v > 100) {
			t.Errorf("RSI[%d] = %.4f outside [0,100]", i, v)
		}
	}
}

func TestRSI_InsufficientData(t *testing.T) {
	ps := series(t, linearCloses(10))
	rsi := RSI(ps, 14)
	for i := 0; i < ps.Len(); i++ {
		assertUndefined(t, "RSI short series", rsi, i)
	}
}
