// Package model defines the data types shared across the engines:
// daily OHLCV bars and the price series they form.
package model

import (
	"encoding/json"
	"fmt"
)

// Bar represents one day's OHLCV record for a single instrument.
type Bar struct {
	Date   string  `json:"date"` // calendar date, e.g. "2024-03-15"
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// JSON returns the JSON-encoded bar (ignoring errors for hot-path usage).
func (b *Bar) JSON() []byte {
	data, _ := json.Marshal(b)
	return data
}

// PriceSeries is an ordered sequence of daily bars for one instrument.
// It is built once by a loader and read-only thereafter; the indicator and
// backtest engines take borrowed references and never mutate it.
//
// Dates must be strictly increasing. Calendar gaps are fine — all
// downstream computations are index-positional, not calendar-aware.
type PriceSeries struct {
	Symbol string
	Name   string
	Bars   []Bar
}

// NewPriceSeries validates the bar ordering and wraps the slice.
func NewPriceSeries(symbol, name string, bars []Bar) (*PriceSeries, error) {
	for i, b := range bars {
		if b.Open < 0 || b.High < 0 || b.Low < 0 || b.Close < 0 {
			return nil, fmt.Errorf("bar %d (%s): negative price", i, b.Date)
		}
		if b.Volume < 0 {
			return nil, fmt.Errorf("bar %d (%s): negative volume", i, b.Date)
		}
		if i > 0 && bars[i-1].Date >= b.Date {
			return nil, fmt.Errorf("bar %d (%s): dates not strictly increasing (previous %s)",
				i, b.Date, bars[i-1].Date)
		}
	}
	return &PriceSeries{Symbol: symbol, Name: name, Bars: bars}, nil
}

// Len returns the number of bars in the series.
func (s *PriceSeries) Len() int { return len(s.Bars) }

// Close returns the closing price at index i.
func (s *PriceSeries) Close(i int) float64 { return s.Bars[i].Close }

// Date returns the calendar date at index i.
func (s *PriceSeries) Date(i int) string { return s.Bars[i].Date }
