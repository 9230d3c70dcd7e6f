// Package csvload reads daily OHLCV bars from CSV files into a validated
// price series.
//
// Expected columns: date, open, high, low, close, volume — with a header
// row. The loader rejects malformed rows before the data reaches the
// engines; the core assumes well-typed numeric fields.
package csvload

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"quantlab/internal/model"
)

// Load reads the CSV at path and returns a validated price series.
func Load(path, symbol, name string) (*model.PriceSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csvload open: %w", err)
	}
	defer f.Close()

	ps, err := Read(f, symbol, name)
	if err != nil {
		return nil, fmt.Errorf("csvload %s: %w", path, err)
	}
	return ps, nil
}

// Read parses CSV bar data from r. The first row is treated as a header
// and skipped.
func Read(r io.Reader, symbol, name string) (*model.PriceSeries, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	var bars []model.Bar
	line := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line+1, err)
		}
		line++
		if line == 1 {
			continue // header
		}
		bar, err := parseRow(record)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		bars = append(bars, bar)
	}

	return model.NewPriceSeries(symbol, name, bars)
}

func parseRow(record []string) (model.Bar, error) {
	if len(record) < 6 {
		return model.Bar{}, fmt.Errorf("expected 6 columns, got %d", len(record))
	}
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}

	open, err := strconv.ParseFloat(record[1], 64)
	if err != nil {
		return model.Bar{}, fmt.Errorf("open %q: %w", record[1], err)
	}
	high, err := strconv.ParseFloat(record[2], 64)
	if err != nil {
		return model.Bar{}, fmt.Errorf("high %q: %w", record[2], err)
	}
	low, err := strconv.ParseFloat(record[3], 64)
	if err != nil {
		return model.Bar{}, fmt.Errorf("low %q: %w", record[3], err)
	}
	closePx, err := strconv.ParseFloat(record[4], 64)
	if err != nil {
		return model.Bar{}, fmt.Errorf("close %q: %w", record[4], err)
	}
	volume, err := strconv.ParseInt(record[5], 10, 64)
	if err != nil {
		return model.Bar{}, fmt.Errorf("volume %q: %w", record[5], err)
	}

	return model.Bar{
		Date:   record[0],
		Open:   open,
		High:   high,
		Low:    low,
		Close:  closePx,
		Volume: volume,
	}, nil
}
