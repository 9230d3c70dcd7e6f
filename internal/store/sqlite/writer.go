// Package sqlite persists daily bars and backtest runs to SQLite.
//
// It is a boundary collaborator: the engines never touch the database —
// commands load a series through Reader and record finished runs through
// Journal.
package sqlite

import (
	"database/sql"
	"fmt"
	"log"

	"quantlab/internal/model"

	_ "github.com/mattn/go-sqlite3"
)

// Writer stores daily bars for later backtest runs.
type Writer struct {
	db *sql.DB
}

// NewWriter opens (or creates) the database with WAL mode and ensures the
// bar schema exists.
func NewWriter(dbPath string) (*Writer, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := createBarSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	log.Printf("[sqlite] opened database at %s", dbPath)
	return &Writer{db: db}, nil
}

func createBarSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS bars_daily (
			symbol  TEXT    NOT NULL,
			name    TEXT,
			date    TEXT    NOT NULL,
			open    REAL    NOT NULL,
			high    REAL    NOT NULL,
			low     REAL    NOT NULL,
			close   REAL    NOT NULL,
			volume  INTEGER NOT NULL,
			PRIMARY KEY (symbol, date)
		);
	`)
	return err
}

// WriteBars upserts every bar of the series in one transaction.
func (w *Writer) WriteBars(ps *model.PriceSeries) error {
	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("sqlite begin: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO bars_daily (symbol, name, date, open, high, low, close, volume)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("sqlite prepare: %w", err)
	}
	defer stmt.Close()

	for _, b := range ps.Bars {
		if _, err := stmt.Exec(ps.Symbol, ps.Name, b.Date, b.Open, b.High, b.Low, b.Close, b.Volume); err != nil {
			tx.Rollback()
			return fmt.Errorf("sqlite insert bar %s: %w", b.Date, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite commit: %w", err)
	}
	log.Printf("[sqlite] wrote %d bars for %s", ps.Len(), ps.Symbol)
	return nil
}

// Close closes the database handle.
func (w *Writer) Close() error { return w.db.Close() }
