package sqlite

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"quantlab/internal/backtest"

	_ "github.com/mattn/go-sqlite3"
)

// Journal persists backtest runs and their simulated trades for analysis
// and audit.
type Journal struct {
	mu sync.Mutex
	db *sql.DB
}

// NewJournal opens (or creates) a SQLite journal database.
func NewJournal(dbPath string) (*Journal, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("journal open: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS backtest_runs (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		strategy       TEXT NOT NULL,
		symbol         TEXT NOT NULL,
		starting_cash  REAL NOT NULL,
		final_value    REAL NOT NULL,
		total_return   REAL NOT NULL,
		max_drawdown   REAL NOT NULL,
		num_trades     INTEGER NOT NULL,
		winning_trades INTEGER NOT NULL,
		forced_liq     INTEGER NOT NULL DEFAULT 0,
		created_at     DATETIME NOT NULL
	);
	CREATE TABLE IF NOT EXISTS backtest_trades (
		id      INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id  INTEGER NOT NULL REFERENCES backtest_runs(id),
		day     INTEGER NOT NULL,
		side    TEXT NOT NULL,
		price   REAL NOT NULL,
		shares  INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_strategy ON backtest_runs(strategy);
	CREATE INDEX IF NOT EXISTS idx_runs_symbol ON backtest_runs(symbol);
	CREATE INDEX IF NOT EXISTS idx_trades_run ON backtest_trades(run_id);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal schema: %w", err)
	}

	log.Printf("[journal] opened backtest journal at %s", dbPath)
	return &Journal{db: db}, nil
}

// RecordRun persists a run summary and its trade ledger in one transaction.
// Returns the run row id.
func (j *Journal) RecordRun(res *backtest.Result) (int64, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	tx, err := j.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("journal begin: %w", err)
	}

	forced := 0
	if res.ForcedLiquidation {
		forced = 1
	}
	r, err := tx.Exec(`
		INSERT INTO backtest_runs
			(strategy, symbol, starting_cash, final_value, total_return,
			 max_drawdown, num_trades, winning_trades, forced_liq, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, res.Strategy, res.Symbol, res.StartingCash, res.FinalValue, res.TotalReturn,
		res.MaxDrawdown, res.NumTrades, res.WinningTrades, forced, time.Now().UTC())
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("journal insert run: %w", err)
	}
	runID, err := r.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("journal run id: %w", err)
	}

	for _, t := range res.Trades {
		if _, err := tx.Exec(`
			INSERT INTO backtest_trades (run_id, day, side, price, shares)
			VALUES (?, ?, ?, ?, ?)
		`, runID, t.Day, string(t.Side), t.Price, t.Shares); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("journal insert trade: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("journal commit: %w", err)
	}
	return runID, nil
}

// Close closes the journal database.
func (j *Journal) Close() error { return j.db.Close() }
