package sqlite

import (
	"database/sql"
	"fmt"
	"log"

	"quantlab/internal/model"

	_ "github.com/mattn/go-sqlite3"
)

// Reader provides read-only access to stored daily bars.
type Reader struct {
	db *sql.DB
}

// NewReader opens a SQLite connection for reading.
func NewReader(dbPath string) (*Reader, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("sqlite open reader: %w", err)
	}
	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(2)

	log.Printf("[sqlite-reader] opened %s", dbPath)
	return &Reader{db: db}, nil
}

// ReadBars loads all bars for a symbol ordered by date ascending and
// returns them as a validated price series.
func (r *Reader) ReadBars(symbol string) (*model.PriceSeries, error) {
	rows, err := r.db.Query(`
		SELECT name, date, open, high, low, close, volume
		FROM bars_daily
		WHERE symbol = ?
		ORDER BY date ASC
	`, symbol)
	if err != nil {
		return nil, fmt.Errorf("sqlite query bars_daily: %w", err)
	}
	defer rows.Close()

	var (
		bars []model.Bar
		name sql.NullString
	)
	for rows.Next() {
		var b model.Bar
		if err := rows.Scan(&name, &b.Date, &b.Open, &b.High, &b.Low, &b.Close, &b.Volume); err != nil {
			return nil, fmt.Errorf("sqlite scan bars_daily: %w", err)
		}
		bars = append(bars, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return model.NewPriceSeries(symbol, name.String, bars)
}

// Close closes the database handle.
func (r *Reader) Close() error { return r.db.Close() }
