// cmd/loaddata imports daily bars from a CSV file into the bar database so
// backtests and reports can run without re-parsing the file.
//
// Usage:
//
//	go run ./cmd/loaddata --csv=data/AAPL.csv --symbol=AAPL --name="Apple Inc."
package main

import (
	"flag"
	"fmt"
	"log"

	"quantlab/config"
	"quantlab/internal/marketdata/csvload"
	sqlitestore "quantlab/internal/store/sqlite"
)

func main() {
	csvPath := flag.String("csv", "", "CSV file with daily bars")
	symbol := flag.String("symbol", "", "Instrument symbol")
	name := flag.String("name", "", "Instrument display name")
	flag.Parse()

	if *csvPath == "" || *symbol == "" {
		log.Fatal("[loaddata] need --csv and --symbol")
	}

	cfg := config.Load()

	ps, err := csvload.Load(*csvPath, *symbol, *name)
	if err != nil {
		log.Fatalf("[loaddata] load csv: %v", err)
	}

	writer, err := sqlitestore.NewWriter(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("[loaddata] sqlite open: %v", err)
	}
	defer writer.Close()

	if err := writer.WriteBars(ps); err != nil {
		log.Fatalf("[loaddata] write bars: %v", err)
	}

	fmt.Printf("✓ Imported %d bars for %s into %s\n", ps.Len(), ps.Symbol, cfg.SQLitePath)
}
