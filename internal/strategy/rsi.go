package strategy

import "quantlab/internal/indicator"

// RSI oversold/overbought thresholds.
const (
	rsiOversold   = 30.0
	rsiOverbought = 70.0
)

// RSIStrategy buys when the RSI drops into oversold territory and sells
// when it climbs above overbought. Days with an undefined RSI (warm-up)
// never trigger.
type RSIStrategy struct{}

// NewRSI creates an RSI threshold strategy with the standard 30/70 bands.
func NewRSI() *RSIStrategy { return &RSIStrategy{} }

func (s *RSIStrategy) Name() string { return "RSI Strategy" }

func (s *RSIStrategy) ShouldBuy(b *indicator.Bundle, day int, holding bool) bool {
	if holding {
		return false
	}
	// A defined RSI of exactly 0 (no gains in the window) is excluded,
	// matching the legacy rule of RSI strictly inside (0, 30).
	rsi, ok := b.RSI.At(day)
	return ok && rsi > 0 && rsi < rsiOversold
}

func (s *RSIStrategy) ShouldSell(b *indicator.Bundle, day int, holding bool) bool {
	if !holding {
		return false
	}
	rsi, ok := b.RSI.At(day)
	return ok && rsi > rsiOverbought
}
