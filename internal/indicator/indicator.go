// Package indicator derives technical indicator series from a daily price
// series: moving averages, MACD, Bollinger Bands, momentum, and RSI.
//
// All computations are pure functions of the price series. Outputs are
// index-aligned Series values whose warm-up positions are undefined; callers
// must check definedness (Series.At) before using a value.
package indicator

import (
	"errors"
	"fmt"

	"quantlab/internal/model"
)

// ErrUnsupportedPeriod is returned when a moving-average period outside the
// supported set is requested. SMA supports {20, 50}; EMA supports {12, 26} —
// the two-MA system used by MACD and the crossover strategy.
var ErrUnsupportedPeriod = errors.New("unsupported moving-average period")

// Default parameters for the fixed indicator set.
const (
	BollingerPeriod = 20
	BollingerWidth  = 2.0
	MomentumPeriod  = 10
	RSIPeriod       = 14
)

// Bundle holds every indicator series computed from one price series.
// Computed once per series snapshot; never mutated afterwards.
type Bundle struct {
	SMA20 *Series
	SMA50 *Series
	EMA12 *Series
	EMA26 *Series

	MACD       *Series
	MACDSignal *Series
	MACDHist   *Series

	BollUpper  *Series
	BollMiddle *Series
	BollLower  *Series

	Momentum *Series
	RSI      *Series
}

// ComputeAll computes the full indicator set in dependency order
// (EMA12/EMA26 before MACD, MACD before signal and histogram).
func ComputeAll(ps *model.PriceSeries) *Bundle {
	b := &Bundle{}

	// Periods here are all in the supported sets, so the errors are
	// unreachable; fail loudly if that invariant ever breaks.
	b.SMA20 = mustSeries(SMA(ps, 20))
	b.SMA50 = mustSeries(SMA(ps, 50))
	b.EMA12 = mustSeries(EMA(ps, 12))
	b.EMA26 = mustSeries(EMA(ps, 26))

	b.MACD, b.MACDSignal, b.MACDHist = MACD(ps, b.EMA12, b.EMA26)
	b.BollUpper, b.BollMiddle, b.BollLower = BollingerBands(ps, BollingerPeriod, BollingerWidth)
	b.Momentum = Momentum(ps, MomentumPeriod)
	b.RSI = RSI(ps, RSIPeriod)

	return b
}

func mustSeries(s *Series, err error) *Series {
	if err != nil {
		panic(fmt.Sprintf("indicator: %v", err))
	}
	return s
}
