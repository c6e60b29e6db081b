// Package config loads the mymoney configuration.
package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/mymoney/date"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	Portfolio PortfolioConfig `toml:"portfolio"`
	Display   DisplayConfig   `toml:"display"`
	Logging   LoggingConfig   `toml:"logging"`
}

// PortfolioConfig contains the ledger settings.
type PortfolioConfig struct {
	Year            int      `toml:"year"` // 0 means the current year.
	RebalanceMonths []string `toml:"rebalance_months"`
}

// DisplayConfig contains report settings.
type DisplayConfig struct {
	Currency string `toml:"currency"`
	Style    string `toml:"style"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// NewDefaultConfig returns the configuration used when nothing overrides it.
func NewDefaultConfig() *Config {
	return &Config{
		Portfolio: PortfolioConfig{
			RebalanceMonths: []string{"JUNE", "DECEMBER"},
		},
		Display: DisplayConfig{
			Currency: "INR",
			Style:    "auto",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		err = toml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnvOverrides applies MYMONEY_* environment variable overrides to config.
func applyEnvOverrides(config *Config) error {
	if year := os.Getenv("MYMONEY_YEAR"); year != "" {
		y, err := strconv.Atoi(year)
		if err != nil {
			return fmt.Errorf("invalid MYMONEY_YEAR %q: %w", year, err)
		}
		config.Portfolio.Year = y
	}
	if months := os.Getenv("MYMONEY_REBALANCE_MONTHS"); months != "" {
		config.Portfolio.RebalanceMonths = nil
		for _, m := range strings.Split(months, ",") {
			config.Portfolio.RebalanceMonths = append(config.Portfolio.RebalanceMonths, strings.TrimSpace(m))
		}
	}
	if currency := os.Getenv("MYMONEY_CURRENCY"); currency != "" {
		config.Display.Currency = currency
	}
	if style := os.Getenv("MYMONEY_STYLE"); style != "" {
		config.Display.Style = style
	}
	if level := os.Getenv("MYMONEY_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if format := os.Getenv("MYMONEY_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}
	return nil
}

// Validate checks that the configuration can build a portfolio.
func (c *Config) Validate() error {
	if c.Portfolio.Year < 0 {
		return fmt.Errorf("invalid portfolio year %d", c.Portfolio.Year)
	}
	if _, err := c.Months(); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q want console or json", c.Logging.Format)
	}
	return nil
}

// Year returns the portfolio year, the current one if not set.
func (c *Config) Year() int {
	if c.Portfolio.Year == 0 {
		return date.ThisYear()
	}
	return c.Portfolio.Year
}

// Months returns the mandatory rebalance months.
//
// Exactly two distinct months are required.
func (c *Config) Months() ([]time.Month, error) {
	var months []time.Month
	for _, name := range c.Portfolio.RebalanceMonths {
		m, err := date.ParseCalendarMonth(name)
		if err != nil {
			return nil, fmt.Errorf("invalid rebalance month: %w", err)
		}
		if slices.Contains(months, m) {
			return nil, fmt.Errorf("duplicate rebalance month %v", m)
		}
		months = append(months, m)
	}
	if len(months) != 2 {
		return nil, fmt.Errorf("want 2 rebalance months, got %d", len(months))
	}
	return months, nil
}
