package backtest

// Side is the direction of a recorded trade.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// Trade is one ledger entry: a fill at a day's closing price.
// Immutable once recorded.
type Trade struct {
	Day    int     `json:"day"`
	Side   Side    `json:"side"`
	Price  float64 `json:"price"`
	Shares int64   `json:"shares"`
}

// Result aggregates one backtest run. Produced once per run; read-only.
type Result struct {
	Strategy string `json:"strategy"`
	Symbol   string `json:"symbol"`

	StartingCash float64 `json:"starting_cash"`
	FinalValue   float64 `json:"final_value"`
	TotalReturn  float64 `json:"total_return"`  // percent
	MaxDrawdown  float64 `json:"max_drawdown"`  // percent

	Trades        []Trade `json:"trades"`
	NumTrades     int     `json:"num_trades"`
	WinningTrades int     `json:"winning_trades"`

	// ForcedLiquidation reports that an open position was sold at the
	// final close. The proceeds are in FinalValue but the sale is not a
	// ledger Trade, preserving the legacy ledger contract.
	ForcedLiquidation bool `json:"forced_liquidation"`
}

// CompletedTrades counts BUY+SELL round trips.
func (r *Result) CompletedTrades() int { return r.NumTrades / 2 }

// WinRate is the percentage of completed trades that closed above their
// entry price. Returns 0 when no trade completed.
func (r *Result) WinRate() float64 {
	completed := r.CompletedTrades()
	if completed == 0 {
		return 0
	}
	return 100 * float64(r.WinningTrades) / float64(completed)
}
