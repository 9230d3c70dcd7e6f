package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SQLITE_PATH", "JOURNAL_PATH", "REDIS_ADDR", "REDIS_PASSWORD", "METRICS_ADDR", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.SQLitePath != "data/bars.db" {
		t.Errorf("sqlite path = %q", cfg.SQLitePath)
	}
	if cfg.JournalPath != "data/backtests.db" {
		t.Errorf("journal path = %q", cfg.JournalPath)
	}
	if cfg.RedisAddr != "" || cfg.MetricsAddr != "" {
		t.Error("optional endpoints must default to disabled")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SQLITE_PATH", "/tmp/custom.db")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.SQLitePath != "/tmp/custom.db" {
		t.Errorf("sqlite path = %q", cfg.SQLitePath)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("redis addr = %q", cfg.RedisAddr)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
}

func TestDefaultRunSpec(t *testing.T) {
	spec := DefaultRunSpec()
	if spec.Strategy != "buyhold" || spec.StartingCash != 10000 || spec.RiskFreeRate != 0.02 {
		t.Errorf("defaults = %+v", spec)
	}
}

func TestLoadRunSpec_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := `symbol: AAPL
name: Apple Inc
csv: data/aapl.csv
strategy: ma
starting_cash: 50000
risk_free_rate: 0.03
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	spec, err := LoadRunSpec(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.Symbol != "AAPL" || spec.Name != "Apple Inc" || spec.CSVPath != "data/aapl.csv" {
		t.Errorf("identity = %+v", spec)
	}
	if spec.Strategy != "ma" || spec.StartingCash != 50000 || spec.RiskFreeRate != 0.03 {
		t.Errorf("params = %+v", spec)
	}
}

func TestLoadRunSpec_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte("symbol: MSFT\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	spec, err := LoadRunSpec(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.Symbol != "MSFT" {
		t.Errorf("symbol = %q", spec.Symbol)
	}
	if spec.Strategy != "buyhold" || spec.StartingCash != 10000 || spec.RiskFreeRate != 0.02 {
		t.Errorf("defaults not preserved: %+v", spec)
	}
}

func TestLoadRunSpec_MissingFile(t *testing.T) {
	if _, err := LoadRunSpec(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestLoadRunSpec_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte("starting_cash: [not a number\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRunSpec(path); err == nil {
		t.Error("malformed yaml accepted")
	}
}
