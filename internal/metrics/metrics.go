// Package metrics exposes Prometheus instrumentation for the indicator and
// backtest pipeline.
package metrics

import (
	"context"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the engines.
type Metrics struct {
	BarsLoaded          prometheus.Counter
	IndicatorComputeDur prometheus.Histogram
	BacktestRuns        *prometheus.CounterVec // labels: strategy
	BacktestDur         prometheus.Histogram
	TradesSimulated     prometheus.Counter
	JournalWriteDur     prometheus.Histogram
}

// New registers and returns all Prometheus metrics.
func New() *Metrics {
	m := &Metrics{
		BarsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quantlab_bars_loaded_total",
			Help: "Daily bars loaded into price series",
		}),
		IndicatorComputeDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "quantlab_indicator_compute_seconds",
			Help:    "Time to compute the full indicator bundle for a series",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
		BacktestRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quantlab_backtest_runs_total",
			Help: "Backtest runs executed",
		}, []string{"strategy"}),
		BacktestDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "quantlab_backtest_seconds",
			Help:    "Time to simulate one backtest run",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
		TradesSimulated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quantlab_trades_simulated_total",
			Help: "Ledger trades recorded across all backtest runs",
		}),
		JournalWriteDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "quantlab_journal_write_seconds",
			Help:    "Time to persist a run to the SQLite journal",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		}),
	}

	prometheus.MustRegister(
		m.BarsLoaded,
		m.IndicatorComputeDur,
		m.BacktestRuns,
		m.BacktestDur,
		m.TradesSimulated,
		m.JournalWriteDur,
	)

	return m
}

// Server runs an HTTP server exposing /metrics.
type Server struct {
	addr string
	srv  *http.Server
}

// NewServer creates a metrics server on addr.
func NewServer(addr string) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &Server{
		addr: addr,
		srv:  &http.Server{Addr: addr, Handler: mux},
	}
}

// Start launches the HTTP server in a goroutine.
func (s *Server) Start() {
	go func() {
		log.Printf("[metrics] server listening on %s", s.addr)
		if err := s.srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("[metrics] server error: %v", err)
		}
	}()
}

// Stop gracefully shuts down the metrics server.
func (s *Server) Stop(ctx context.Context) {
	s.srv.Shutdown(ctx)
}
