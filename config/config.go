// Package config loads and validates session configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ritvikindupuri/QuantamTrade/market"
)

// Config is the complete session configuration.
type Config struct {
	Account  AccountConfig  `json:"account" yaml:"account"`
	Feed     FeedConfig     `json:"feed" yaml:"feed"`
	Strategy StrategyConfig `json:"strategy" yaml:"strategy"`
	Journal  JournalConfig  `json:"journal" yaml:"journal"`
}

// AccountConfig contains account initialization parameters.
type AccountConfig struct {
	ID       string  `json:"id" yaml:"id"`
	Currency string  `json:"currency" yaml:"currency"`
	Cash     float64 `json:"cash" yaml:"cash"`
}

// FeedConfig tunes the synthetic price feed.
type FeedConfig struct {
	Interval string   `json:"interval" yaml:"interval"` // e.g. "1s", "100ms"
	Step     float64  `json:"step" yaml:"step"`         // per-tick step fraction
	Seed     int64    `json:"seed" yaml:"seed"`
	Pairs    []string `json:"pairs,omitempty" yaml:"pairs,omitempty"`
	Ticks    int      `json:"ticks" yaml:"ticks"` // session length in ticks
}

// ParseInterval converts the feed interval to a duration.
func (f FeedConfig) ParseInterval() (time.Duration, error) {
	if f.Interval == "" {
		return time.Second, nil
	}
	return time.ParseDuration(f.Interval)
}

// StrategyConfig selects and sizes the signal producer. An empty name runs a
// feed-only session.
type StrategyConfig struct {
	Name     string  `json:"name,omitempty" yaml:"name,omitempty"`
	Pair     string  `json:"pair,omitempty" yaml:"pair,omitempty"`
	Quantity float64 `json:"quantity,omitempty" yaml:"quantity,omitempty"`
}

// JournalConfig contains journaling parameters.
type JournalConfig struct {
	Type       string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	TradesFile string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"`
	EquityFile string `json:"equity_file,omitempty" yaml:"equity_file,omitempty"`
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a YAML or JSON file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Account.Currency == "" {
		return fmt.Errorf("account.currency is required")
	}
	if c.Account.Cash <= 0 {
		return fmt.Errorf("account.cash must be positive")
	}

	if _, err := c.Feed.ParseInterval(); err != nil {
		return fmt.Errorf("feed.interval: %w", err)
	}
	if c.Feed.Step < 0 {
		return fmt.Errorf("feed.step must not be negative")
	}
	if c.Feed.Ticks <= 0 {
		return fmt.Errorf("feed.ticks must be positive")
	}
	for _, p := range c.Feed.Pairs {
		if _, err := market.ParsePair(p); err != nil {
			return fmt.Errorf("feed.pairs: %w", err)
		}
	}

	if c.Strategy.Name != "" {
		if _, err := market.ParsePair(c.Strategy.Pair); err != nil {
			return fmt.Errorf("strategy.pair: %w", err)
		}
		if c.Strategy.Quantity <= 0 {
			return fmt.Errorf("strategy.quantity must be positive")
		}
		if len(c.Feed.Pairs) > 0 {
			fed := false
			for _, p := range c.Feed.Pairs {
				if p == c.Strategy.Pair {
					fed = true
					break
				}
			}
			if !fed {
				return fmt.Errorf("strategy.pair %s is not produced by feed.pairs", c.Strategy.Pair)
			}
		}
	}

	switch c.Journal.Type {
	case "none":
	case "csv":
		if c.Journal.TradesFile == "" || c.Journal.EquityFile == "" {
			return fmt.Errorf("journal trades_file and equity_file required for csv type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for sqlite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	return nil
}

// FeedPairs resolves the configured pair list, defaulting to all pairs.
func (c *Config) FeedPairs() []market.Pair {
	if len(c.Feed.Pairs) == 0 {
		return market.AllPairs()
	}
	out := make([]market.Pair, 0, len(c.Feed.Pairs))
	for _, p := range c.Feed.Pairs {
		out = append(out, market.Pair(p))
	}
	return out
}

// SaveToFile writes the configuration as YAML or JSON based on extension.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			ID:       "SIM-001",
			Currency: "USD",
			Cash:     100000,
		},
		Feed: FeedConfig{
			Interval: "1s",
			Step:     0.002,
			Seed:     1,
			Ticks:    300,
		},
		Strategy: StrategyConfig{
			Name:     "ma-cross",
			Pair:     string(market.BTCUSD),
			Quantity: 0.1,
		},
		Journal: JournalConfig{
			Type:       "csv",
			TradesFile: "./trades.csv",
			EquityFile: "./equity.csv",
		},
	}
}
