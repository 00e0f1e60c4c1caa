package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level spendlens.yaml configuration.
type Config struct {
	Market  MarketConfig  `yaml:"market"`
	Reports ReportsConfig `yaml:"reports"`
}

// Quote is a static symbol/value pair used for fallback market data.
type Quote struct {
	Symbol string  `yaml:"symbol"`
	Value  float64 `yaml:"value"`
}

// MarketConfig describes the external quote collaborators. API keys are
// secrets and come from the environment, never from the config file.
type MarketConfig struct {
	CurrencyURL      string   `yaml:"currency_url"`
	StockURL         string   `yaml:"stock_url"`
	Currencies       []string `yaml:"currencies"`
	Stocks           []string `yaml:"stocks"`
	TimeoutSeconds   int      `yaml:"timeout_seconds"`
	CurrencyFallback []Quote  `yaml:"currency_fallback"`
	StockFallback    []Quote  `yaml:"stock_fallback"`

	CurrencyAPIKey string `yaml:"-"`
	StockAPIKey    string `yaml:"-"`
}

// ReportsConfig holds report defaults.
type ReportsConfig struct {
	TopTransactions int `yaml:"top_transactions"`
	RoundUpLimit    int `yaml:"round_up_limit"`
}

// Default returns the built-in configuration. The fallback quote sets
// mirror the static values reports fall back to when no live source is
// reachable.
func Default() *Config {
	return &Config{
		Market: MarketConfig{
			Currencies:     []string{"USD", "EUR", "GBP", "JPY"},
			Stocks:         []string{"AAPL", "GOOGL", "MSFT", "TSLA"},
			TimeoutSeconds: 10,
			CurrencyFallback: []Quote{
				{Symbol: "USD", Value: 75.50},
				{Symbol: "EUR", Value: 85.20},
				{Symbol: "GBP", Value: 95.75},
				{Symbol: "JPY", Value: 0.68},
			},
			StockFallback: []Quote{
				{Symbol: "AAPL", Value: 150.12},
				{Symbol: "GOOGL", Value: 2742.39},
				{Symbol: "MSFT", Value: 305.50},
				{Symbol: "TSLA", Value: 210.75},
			},
		},
		Reports: ReportsConfig{
			TopTransactions: 5,
			RoundUpLimit:    50,
		},
	}
}

// Load reads a spendlens.yaml file and merges in API keys from the
// environment. A missing file is not an error: defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	cfg.Market.CurrencyAPIKey = os.Getenv("CURRENCY_API_KEY")
	cfg.Market.StockAPIKey = os.Getenv("STOCK_API_KEY")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks the configuration for values no command could run with.
func (c *Config) Validate() error {
	if c.Market.TimeoutSeconds <= 0 {
		return fmt.Errorf("market.timeout_seconds must be positive, got %d", c.Market.TimeoutSeconds)
	}
	if c.Reports.TopTransactions <= 0 {
		return fmt.Errorf("reports.top_transactions must be positive, got %d", c.Reports.TopTransactions)
	}
	if c.Reports.RoundUpLimit <= 0 {
		return fmt.Errorf("reports.round_up_limit must be positive, got %d", c.Reports.RoundUpLimit)
	}
	return nil
}
