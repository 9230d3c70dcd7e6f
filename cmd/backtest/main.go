// cmd/backtest runs a strategy simulation over a daily price series loaded
// from CSV or the bar database, records the run to the journal, and
// optionally publishes the result to Redis.
//
// Usage:
//
//	go run ./cmd/backtest --csv=data/AAPL.csv --symbol=AAPL --strategy=ma
//	go run ./cmd/backtest --run=runs/aapl-ma.yaml
//	go run ./cmd/backtest --symbol=AAPL --strategy=rsi   (bars from SQLITE_PATH)
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"time"

	"quantlab/config"
	"quantlab/internal/backtest"
	"quantlab/internal/indicator"
	"quantlab/internal/logger"
	"quantlab/internal/marketdata/csvload"
	"quantlab/internal/metrics"
	"quantlab/internal/model"
	redisstore "quantlab/internal/store/redis"
	sqlitestore "quantlab/internal/store/sqlite"
	"quantlab/internal/strategy"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)

	// Flags override the run spec file, which overrides defaults.
	runFile := flag.String("run", "", "YAML run spec file")
	csvPath := flag.String("csv", "", "CSV file with daily bars (overrides the bar database)")
	symbol := flag.String("symbol", "", "Instrument symbol")
	name := flag.String("name", "", "Instrument display name")
	stratName := flag.String("strategy", "", "Strategy: rsi | ma | buyhold")
	cash := flag.Float64("cash", 0, "Starting cash")
	noJournal := flag.Bool("no-journal", false, "Skip recording the run to the journal database")
	flag.Parse()

	cfg := config.Load()
	slogger := logger.Init("backtest", logger.ParseLevel(cfg.LogLevel))

	spec := config.DefaultRunSpec()
	if *runFile != "" {
		var err error
		spec, err = config.LoadRunSpec(*runFile)
		if err != nil {
			log.Fatalf("[backtest] run spec: %v", err)
		}
	}
	if *csvPath != "" {
		spec.CSVPath = *csvPath
	}
	if *symbol != "" {
		spec.Symbol = *symbol
	}
	if *name != "" {
		spec.Name = *name
	}
	if *stratName != "" {
		spec.Strategy = *stratName
	}
	if *cash > 0 {
		spec.StartingCash = *cash
	}
	if spec.Symbol == "" && spec.CSVPath == "" {
		log.Fatal("[backtest] need --csv or --symbol (or a run spec providing one)")
	}

	strat, err := makeStrategy(spec.Strategy)
	if err != nil {
		log.Fatalf("[backtest] %v", err)
	}

	m := metrics.New()
	if cfg.MetricsAddr != "" {
		srv := metrics.NewServer(cfg.MetricsAddr)
		srv.Start()
		defer srv.Stop(context.Background())
	}

	ps, err := loadSeries(cfg, spec)
	if err != nil {
		log.Fatalf("[backtest] load series: %v", err)
	}
	m.BarsLoaded.Add(float64(ps.Len()))
	slogger.Info("series loaded",
		slog.String("symbol", ps.Symbol),
		slog.Int("bars", ps.Len()),
	)

	indStart := time.Now()
	bundle := indicator.ComputeAll(ps)
	m.IndicatorComputeDur.Observe(time.Since(indStart).Seconds())

	btStart := time.Now()
	res := backtest.Run(ps, bundle, strat, spec.StartingCash)
	m.BacktestDur.Observe(time.Since(btStart).Seconds())
	m.BacktestRuns.WithLabelValues(res.Strategy).Inc()
	m.TradesSimulated.Add(float64(res.NumTrades))

	slogger.Info("backtest complete",
		slog.String("strategy", res.Strategy),
		slog.Float64("total_return_pct", res.TotalReturn),
		slog.Int("trades", res.NumTrades),
	)

	if !*noJournal {
		journalStart := time.Now()
		journal, err := sqlitestore.NewJournal(cfg.JournalPath)
		if err != nil {
			log.Fatalf("[backtest] journal open: %v", err)
		}
		defer journal.Close()
		runID, err := journal.RecordRun(res)
		if err != nil {
			log.Fatalf("[backtest] journal record: %v", err)
		}
		m.JournalWriteDur.Observe(time.Since(journalStart).Seconds())
		slogger.Info("run journaled", slog.Int64("run_id", runID))
	}

	if cfg.RedisAddr != "" {
		pub, err := redisstore.NewPublisher(redisstore.PublisherConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err != nil {
			log.Printf("[backtest] redis unavailable, skipping publish: %v", err)
		} else {
			defer pub.Close()
			if err := pub.PublishResult(context.Background(), res); err != nil {
				log.Printf("[backtest] publish failed: %v", err)
			}
		}
	}

	printResults(res)
}

func makeStrategy(name string) (strategy.Strategy, error) {
	switch name {
	case "rsi":
		return strategy.NewRSI(), nil
	case "ma":
		return strategy.NewMACrossover(), nil
	case "buyhold", "":
		return strategy.NewBuyHold(), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want rsi, ma, or buyhold)", name)
	}
}

func loadSeries(cfg *config.Config, spec config.RunSpec) (*model.PriceSeries, error) {
	if spec.CSVPath != "" {
		sym := spec.Symbol
		if sym == "" {
			sym = "UNKNOWN"
		}
		return csvload.Load(spec.CSVPath, sym, spec.Name)
	}

	reader, err := sqlitestore.NewReader(cfg.SQLitePath)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return reader.ReadBars(spec.Symbol)
}

func printResults(res *backtest.Result) {
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════╗")
	fmt.Println("║             BACKTEST RESULTS             ║")
	fmt.Println("╠══════════════════════════════════════════╣")
	fmt.Printf("║  Strategy:         %-21s ║\n", res.Strategy)
	fmt.Printf("║  Symbol:           %-21s ║\n", res.Symbol)
	fmt.Printf("║  Starting Capital: $%-20.2f ║\n", res.StartingCash)
	fmt.Printf("║  Final Value:      $%-20.2f ║\n", res.FinalValue)
	fmt.Printf("║  Total Return:     %-20.2f%% ║\n", res.TotalReturn)
	fmt.Printf("║  Max Drawdown:     %-20.2f%% ║\n", res.MaxDrawdown)
	fmt.Printf("║  Total Trades:     %-21d ║\n", res.NumTrades)
	if res.CompletedTrades() > 0 {
		fmt.Printf("║  Winning Trades:   %d / %-17d ║\n", res.WinningTrades, res.CompletedTrades())
		fmt.Printf("║  Win Rate:         %-20.2f%% ║\n", res.WinRate())
	}
	if res.ForcedLiquidation {
		fmt.Println("║  (open position liquidated at final bar) ║")
	}
	fmt.Println("╚══════════════════════════════════════════╝")

	if len(res.Trades) > 0 {
		fmt.Println("\nRecent trades (last 5):")
		start := len(res.Trades) - 5
		if start < 0 {
			start = 0
		}
		for _, t := range res.Trades[start:] {
			fmt.Printf("  Day %d: %s %d shares @ $%.2f\n", t.Day, t.Side, t.Shares, t.Price)
		}
	}
}
