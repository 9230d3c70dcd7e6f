// Package portfolio tracks a caller-owned ledger of cash and holdings with
// average-cost bookkeeping and an append-only transaction log.
//
// It is independent of the indicator and backtest engines: the backtest
// keeps its own cash/position state, and nothing crosses this boundary.
package portfolio

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrInsufficientCash means a buy costs more than the cash balance.
	ErrInsufficientCash = errors.New("insufficient cash")
	// ErrInsufficientShares means a sell exceeds the held quantity.
	ErrInsufficientShares = errors.New("insufficient shares")
	// ErrNotHeld means the symbol is not in the portfolio.
	ErrNotHeld = errors.New("symbol not held")
)

// Holding is one position with its average entry cost.
type Holding struct {
	Symbol       string
	Quantity     int64
	AvgCost      float64
	PurchaseDate string // date of the first lot
}

// CostBasis is quantity times average cost.
func (h *Holding) CostBasis() float64 {
	return float64(h.Quantity) * h.AvgCost
}

// Portfolio is a named cash + holdings ledger.
type Portfolio struct {
	name         string
	cash         float64
	holdings     map[string]*Holding
	transactions []string
}

// New creates an empty portfolio with a zero cash balance.
func New(name string) *Portfolio {
	return &Portfolio{
		name:     name,
		holdings: make(map[string]*Holding),
	}
}

// Name returns the portfolio name.
func (p *Portfolio) Name() string { return p.name }

// Cash returns the current cash balance.
func (p *Portfolio) Cash() float64 { return p.cash }

// AddCash credits the cash balance.
func (p *Portfolio) AddCash(amount float64) {
	p.cash += amount
	p.transactions = append(p.transactions, fmt.Sprintf("DEPOSIT $%.2f", amount))
}

// Buy purchases quantity shares at price, updating the average cost if the
// symbol is already held.
func (p *Portfolio) Buy(symbol string, quantity int64, price float64, date string) error {
	cost := float64(quantity) * price
	if cost > p.cash {
		return fmt.Errorf("%w: need $%.2f, have $%.2f", ErrInsufficientCash, cost, p.cash)
	}
	p.cash -= cost

	if h, ok := p.holdings[symbol]; ok {
		total := h.CostBasis() + cost
		h.Quantity += quantity
		h.AvgCost = total / float64(h.Quantity)
	} else {
		p.holdings[symbol] = &Holding{
			Symbol:       symbol,
			Quantity:     quantity,
			AvgCost:      price,
			PurchaseDate: date,
		}
	}

	p.transactions = append(p.transactions,
		fmt.Sprintf("BUY %d %s @ $%.2f on %s", quantity, symbol, price, date))
	return nil
}

// Sell disposes of quantity shares at price. The holding is removed when
// its quantity reaches zero.
func (p *Portfolio) Sell(symbol string, quantity int64, price float64, date string) error {
	h, ok := p.holdings[symbol]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotHeld, symbol)
	}
	if h.Quantity < quantity {
		return fmt.Errorf("%w: have %d, want to sell %d", ErrInsufficientShares, h.Quantity, quantity)
	}

	p.cash += float64(quantity) * price
	h.Quantity -= quantity
	if h.Quantity == 0 {
		delete(p.holdings, symbol)
	}

	p.transactions = append(p.transactions,
		fmt.Sprintf("SELL %d %s @ $%.2f on %s", quantity, symbol, price, date))
	return nil
}

// Has reports whether the symbol is currently held.
func (p *Portfolio) Has(symbol string) bool {
	_, ok := p.holdings[symbol]
	return ok
}

// Quantity returns the held quantity for symbol, 0 if not held.
func (p *Portfolio) Quantity(symbol string) int64 {
	if h, ok := p.holdings[symbol]; ok {
		return h.Quantity
	}
	return 0
}

// Holdings returns a snapshot of all positions, sorted by symbol.
func (p *Portfolio) Holdings() []Holding {
	out := make([]Holding, 0, len(p.holdings))
	for _, h := range p.holdings {
		out = append(out, *h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

// TotalCostBasis sums the cost basis across holdings.
func (p *Portfolio) TotalCostBasis() float64 {
	total := 0.0
	for _, h := range p.holdings {
		total += h.CostBasis()
	}
	return total
}

// Transactions returns the transaction log in order.
func (p *Portfolio) Transactions() []string {
	out := make([]string, len(p.transactions))
	copy(out, p.transactions)
	return out
}
