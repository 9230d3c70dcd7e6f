// Package strategy defines the trading-rule interface consumed by the
// backtest engine, plus the three shipped rules: RSI thresholds, moving-
// average crossover, and buy-and-hold.
//
// Strategies are pure decision functions over the indicator bundle and a
// day index; they hold no position state — the engine tracks holding and
// passes it in.
package strategy

import "quantlab/internal/indicator"

// Strategy decides whether to buy or sell on a given day. Implementations
// must be deterministic: the same bundle, day, and holding flag always
// produce the same answer.
type Strategy interface {
	// Name returns a human-readable strategy name for reports.
	Name() string

	// ShouldBuy reports whether to open a position on this day.
	ShouldBuy(b *indicator.Bundle, day int, holding bool) bool

	// ShouldSell reports whether to close the position on this day.
	ShouldSell(b *indicator.Bundle, day int, holding bool) bool
}
