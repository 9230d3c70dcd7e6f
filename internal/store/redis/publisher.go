// Package redis publishes finished backtest runs to a Redis stream so
// dashboards and downstream consumers can follow results without polling
// the journal database. Publishing is optional — commands only construct a
// Publisher when a Redis address is configured.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"quantlab/internal/backtest"

	goredis "github.com/go-redis/redis/v8"
)

const (
	// resultStream holds run summaries, trimmed to a bounded history.
	resultStream       = "stream:backtest:results"
	resultStreamMaxLen = 1000

	connectTimeout = 5 * time.Second
)

// PublisherConfig configures the Redis publisher.
type PublisherConfig struct {
	Addr     string // e.g. "localhost:6379"
	Password string
	DB       int
}

// Publisher writes backtest run summaries to a Redis stream.
type Publisher struct {
	client *goredis.Client
}

// NewPublisher connects to Redis and pings the server.
func NewPublisher(cfg PublisherConfig) (*Publisher, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	log.Printf("[redis] connected to %s", cfg.Addr)
	return &Publisher{client: client}, nil
}

// PublishResult XAdds a run summary, with the ledger JSON-encoded in a
// single field, to the results stream.
func (p *Publisher) PublishResult(ctx context.Context, res *backtest.Result) error {
	trades, err := json.Marshal(res.Trades)
	if err != nil {
		return fmt.Errorf("redis marshal trades: %w", err)
	}

	err = p.client.XAdd(ctx, &goredis.XAddArgs{
		Stream: resultStream,
		MaxLen: resultStreamMaxLen,
		Approx: true,
		Values: map[string]interface{}{
			"strategy":       res.Strategy,
			"symbol":         res.Symbol,
			"starting_cash":  res.StartingCash,
			"final_value":    res.FinalValue,
			"total_return":   res.TotalReturn,
			"max_drawdown":   res.MaxDrawdown,
			"num_trades":     res.NumTrades,
			"winning_trades": res.WinningTrades,
			"trades":         string(trades),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("redis xadd result: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (p *Publisher) Close() error { return p.client.Close() }
