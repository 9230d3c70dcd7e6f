package strategy

import "quantlab/internal/indicator"

// BuyHoldStrategy buys once at the first day at or past the warm-up horizon
// and never sells; the position is force-liquidated at the final bar by the
// engine, not by the strategy.
type BuyHoldStrategy struct{}

// NewBuyHold creates a buy-and-hold strategy.
func NewBuyHold() *BuyHoldStrategy { return &BuyHoldStrategy{} }

func (s *BuyHoldStrategy) Name() string { return "Buy and Hold" }

func (s *BuyHoldStrategy) ShouldBuy(_ *indicator.Bundle, day int, holding bool) bool {
	return !holding && day >= maMinDay
}

func (s *BuyHoldStrategy) ShouldSell(_ *indicator.Bundle, _ int, _ bool) bool {
	return false
}
