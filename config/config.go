// Package config loads application configuration from environment
// variables, with an optional YAML run file for per-backtest parameters.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds infrastructure configuration loaded from environment
// variables.
type Config struct {
	// Storage
	SQLitePath  string // daily bar database
	JournalPath string // backtest run journal

	// Optional result publishing; empty address disables it.
	RedisAddr     string
	RedisPassword string

	// Optional metrics endpoint; empty address disables it.
	MetricsAddr string

	LogLevel string
}

// Load reads configuration from environment variables with sensible
// defaults.
func Load() *Config {
	return &Config{
		SQLitePath:  getEnv("SQLITE_PATH", "data/bars.db"),
		JournalPath: getEnv("JOURNAL_PATH", "data/backtests.db"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		MetricsAddr: getEnv("METRICS_ADDR", ""),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// RunSpec describes one backtest run, loadable from a YAML file so a run
// is reproducible without retyping flags.
type RunSpec struct {
	Symbol       string  `yaml:"symbol"`
	Name         string  `yaml:"name"`
	CSVPath      string  `yaml:"csv"`
	Strategy     string  `yaml:"strategy"` // rsi | ma | buyhold
	StartingCash float64 `yaml:"starting_cash"`
	RiskFreeRate float64 `yaml:"risk_free_rate"`
}

// DefaultRunSpec returns the run parameters used when no file or flag
// overrides them.
func DefaultRunSpec() RunSpec {
	return RunSpec{
		Strategy:     "buyhold",
		StartingCash: 10000,
		RiskFreeRate: 0.02,
	}
}

// LoadRunSpec reads a RunSpec from a YAML file, filling unset numeric
// fields from the defaults.
func LoadRunSpec(path string) (RunSpec, error) {
	spec := DefaultRunSpec()

	data, err := os.ReadFile(path)
	if err != nil {
		return spec, fmt.Errorf("run spec read: %w", err)
	}
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return spec, fmt.Errorf("run spec parse %s: %w", path, err)
	}

	if spec.StartingCash <= 0 {
		spec.StartingCash = 10000
	}
	if spec.RiskFreeRate == 0 {
		spec.RiskFreeRate = 0.02
	}
	return spec, nil
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
