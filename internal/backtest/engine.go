// Package backtest simulates a trading rule day by day over a price series,
// producing a trade ledger and return/risk/activity statistics.
//
// The simulation is a two-state machine (flat / long) driven by strategy
// decisions. It is strictly deterministic: the same series, bundle, and
// strategy always produce an identical Result.
package backtest

import (
	"quantlab/internal/indicator"
	"quantlab/internal/model"
	"quantlab/internal/strategy"
)

// Run simulates strat over the full series with the given starting cash.
//
// Each day, the buy check runs first and, only if no buy executed, the sell
// check — a single day never both buys and sells. Buys are all-in
// (floor(cash/price) shares); a buy signal that cannot afford one share and
// a sell signal while flat are silently skipped. An open position at the
// end of the series is liquidated at the final close; the proceeds count
// toward the final value but no ledger trade is recorded.
//
// An empty series yields a zero-trade, zero-return Result.
func Run(ps *model.PriceSeries, b *indicator.Bundle, strat strategy.Strategy, startingCash float64) *Result {
	res := &Result{
		Strategy:     strat.Name(),
		Symbol:       ps.Symbol,
		StartingCash: startingCash,
		FinalValue:   startingCash,
	}

	cash := startingCash
	var shares int64
	holding := false
	entryPrice := 0.0
	peak := startingCash

	for day := 0; day < ps.Len(); day++ {
		price := ps.Close(day)

		if strat.ShouldBuy(b, day, holding) {
			if price > 0 {
				sharesToBuy := int64(cash / price)
				if sharesToBuy > 0 {
					cash -= float64(sharesToBuy) * price
					shares = sharesToBuy
					holding = true
					entryPrice = price
					res.Trades = append(res.Trades, Trade{Day: day, Side: SideBuy, Price: price, Shares: sharesToBuy})
					res.NumTrades++
				}
			}
		} else if strat.ShouldSell(b, day, holding) && shares > 0 {
			cash += float64(shares) * price
			if price > entryPrice {
				res.WinningTrades++
			}
			res.Trades = append(res.Trades, Trade{Day: day, Side: SideSell, Price: price, Shares: shares})
			res.NumTrades++
			shares = 0
			holding = false
		}

		equity := cash + float64(shares)*price
		if equity > peak {
			peak = equity
		}
		if peak > 0 {
			dd := 100 * (peak - equity) / peak
			if dd > res.MaxDrawdown {
				res.MaxDrawdown = dd
			}
		}
	}

	if shares > 0 {
		cash += float64(shares) * ps.Close(ps.Len()-1)
		shares = 0
		res.ForcedLiquidation = true
	}

	res.FinalValue = cash
	if startingCash > 0 {
		res.TotalReturn = 100 * (res.FinalValue - startingCash) / startingCash
	}
	return res
}
