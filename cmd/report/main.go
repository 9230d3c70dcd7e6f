// cmd/report prints a summary, indicator table, and analytics report for a
// daily price series. Warm-up indicator positions render as "N/A".
//
// Usage:
//
//	go run ./cmd/report --csv=data/AAPL.csv --symbol=AAPL --days=10
package main

import (
	"flag"
	"fmt"
	"log"

	"quantlab/config"
	"quantlab/internal/analytics"
	"quantlab/internal/indicator"
	"quantlab/internal/marketdata/csvload"
	"quantlab/internal/model"
	sqlitestore "quantlab/internal/store/sqlite"
)

func main() {
	csvPath := flag.String("csv", "", "CSV file with daily bars (overrides the bar database)")
	symbol := flag.String("symbol", "", "Instrument symbol")
	name := flag.String("name", "", "Instrument display name")
	days := flag.Int("days", 10, "Recent days to show in the tables")
	riskFree := flag.Float64("rf", analytics.DefaultRiskFreeRate, "Annual risk-free rate as a fraction")
	flag.Parse()

	if *csvPath == "" && *symbol == "" {
		log.Fatal("[report] need --csv or --symbol")
	}

	ps, err := loadSeries(*csvPath, *symbol, *name)
	if err != nil {
		log.Fatalf("[report] load series: %v", err)
	}

	printSummary(ps)
	printRecentBars(ps, *days)

	bundle := indicator.ComputeAll(ps)
	printIndicators(ps, bundle, *days)
	printAnalytics(ps, *riskFree)
}

func loadSeries(csvPath, symbol, name string) (*model.PriceSeries, error) {
	if csvPath != "" {
		if symbol == "" {
			symbol = "UNKNOWN"
		}
		return csvload.Load(csvPath, symbol, name)
	}
	cfg := config.Load()
	reader, err := sqlitestore.NewReader(cfg.SQLitePath)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return reader.ReadBars(symbol)
}

func printSummary(ps *model.PriceSeries) {
	fmt.Printf("\n=== %s", ps.Symbol)
	if ps.Name != "" {
		fmt.Printf(" - %s", ps.Name)
	}
	fmt.Println(" ===")
	fmt.Printf("Total days of data: %d\n", ps.Len())
	if ps.Len() > 0 {
		fmt.Printf("Date range: %s to %s\n", ps.Date(0), ps.Date(ps.Len()-1))
		fmt.Printf("Latest close: $%.2f\n", ps.Close(ps.Len()-1))
	}
}

func printRecentBars(ps *model.PriceSeries, days int) {
	if ps.Len() == 0 {
		fmt.Println("No data available.")
		return
	}
	start := ps.Len() - days
	if start < 0 {
		start = 0
	}
	fmt.Printf("\nRecent %d days:\n", days)
	fmt.Println("Date        Open      High      Low       Close     Volume")
	fmt.Println("----------------------------------------------------------------")
	for i := start; i < ps.Len(); i++ {
		b := ps.Bars[i]
		fmt.Printf("%-11s %-9.2f %-9.2f %-9.2f %-9.2f %d\n",
			b.Date, b.Open, b.High, b.Low, b.Close, b.Volume)
	}
}

func printIndicators(ps *model.PriceSeries, b *indicator.Bundle, days int) {
	start := ps.Len() - days
	if start < 0 {
		start = 0
	}
	fmt.Printf("\nIndicators (last %d days):\n", days)
	fmt.Println("Date        Close     SMA20     SMA50     RSI       MACD      Momentum")
	fmt.Println("------------------------------------------------------------------------")
	for i := start; i < ps.Len(); i++ {
		fmt.Printf("%-11s %-9.2f %-9s %-9s %-9s %-9s %-9s\n",
			ps.Date(i), ps.Close(i),
			cell(b.SMA20, i), cell(b.SMA50, i), cell(b.RSI, i),
			cell(b.MACD, i), cell(b.Momentum, i))
	}
	fmt.Println("\nBollinger Bands (latest day):")
	last := ps.Len() - 1
	fmt.Printf("  Upper: %s  Middle: %s  Lower: %s\n",
		cell(b.BollUpper, last), cell(b.BollMiddle, last), cell(b.BollLower, last))
}

// cell formats an indicator value, rendering the warm-up as "N/A".
func cell(s *indicator.Series, i int) string {
	v, ok := s.At(i)
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", v)
}

func printAnalytics(ps *model.PriceSeries, riskFree float64) {
	returns := analytics.DailyReturns(ps)

	fmt.Printf("\n=== Analytics Report for %s ===\n", ps.Symbol)
	fmt.Println("\nPerformance Metrics:")
	fmt.Println("-----------------------------------")
	fmt.Printf("Cumulative Return: %.2f%%\n", analytics.CumulativeReturn(ps))
	fmt.Printf("Volatility (Annualized): %.2f%%\n", analytics.Volatility(returns))
	fmt.Printf("Sharpe Ratio: %.2f\n", analytics.SharpeRatio(returns, riskFree))
	fmt.Printf("Maximum Drawdown: %.2f%%\n", analytics.MaxDrawdown(ps))
	fmt.Printf("Total Days: %d\n", ps.Len())
}
