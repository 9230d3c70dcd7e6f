package strategy

import "quantlab/internal/indicator"

// maMinDay gives SMA50 a full window plus one prior day for the cross check.
const maMinDay = 50

// MAStrategy trades SMA20/SMA50 crossovers.
//
// Buy signal: SMA20 crosses from at-or-below SMA50 to above it between
// day-1 and day (golden cross). Sell signal: the mirror downward cross
// (death cross). Both days' SMAs must be defined, so no signal can fire
// inside the warm-up. No state is carried between days — the cross is
// derived entirely from day and day-1.
type MAStrategy struct{}

// NewMACrossover creates a 20/50 moving-average crossover strategy.
func NewMACrossover() *MAStrategy { return &MAStrategy{} }

func (s *MAStrategy) Name() string { return "Moving Average Crossover" }

func (s *MAStrategy) ShouldBuy(b *indicator.Bundle, day int, holding bool) bool {
	if holding || day < maMinDay {
		return false
	}
	fast, fastPrev, slow, slowPrev, ok := s.smas(b, day)
	if !ok {
		return false
	}
	return fastPrev <= slowPrev && fast > slow
}

func (s *MAStrategy) ShouldSell(b *indicator.Bundle, day int, holding bool) bool {
	if !holding || day < maMinDay {
		return false
	}
	fast, fastPrev, slow, slowPrev, ok := s.smas(b, day)
	if !ok {
		return false
	}
	return fastPrev >= slowPrev && fast < slow
}

func (s *MAStrategy) smas(b *indicator.Bundle, day int) (fast, fastPrev, slow, slowPrev float64, ok bool) {
	fast, ok1 := b.SMA20.At(day)
	slow, ok2 := b.SMA50.At(day)
	fastPrev, ok3 := b.SMA20.At(day - 1)
	slowPrev, ok4 := b.SMA50.At(day - 1)
	return fast, fastPrev, slow, slowPrev, ok1 && ok2 && ok3 && ok4
}
