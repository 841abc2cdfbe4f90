package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/minibank/internal/amount"
)

// FileName is the default config file name.
const FileName = "minibank.yaml"

// Config represents the top-level minibank.yaml configuration.
type Config struct {
	Currency string          `yaml:"currency,omitempty"`
	Accounts []AccountConfig `yaml:"accounts"`
	Scenario ScenarioConfig  `yaml:"scenario"`
}

// AccountConfig declares one account to open.
type AccountConfig struct {
	ID     int    `yaml:"id"`
	Holder string `yaml:"holder"`
}

// ScenarioConfig holds the amounts applied to the first account.
// Amounts are strings so they go through amount.Parse.
type ScenarioConfig struct {
	Deposit  string `yaml:"deposit"`
	Withdraw string `yaml:"withdraw"`
}

// Load reads a minibank.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the built-in demonstration: two accounts, deposit 1000
// into the first, then withdraw 10.
func Default() *Config {
	return &Config{
		Currency: "USD",
		Accounts: []AccountConfig{
			{ID: 1, Holder: "Account holder 1"},
			{ID: 2, Holder: "Account holder 2"},
		},
		Scenario: ScenarioConfig{
			Deposit:  "1000",
			Withdraw: "10",
		},
	}
}

// Validate checks that the config describes a runnable scenario.
// Negative amounts are allowed here; the ledger rejects them at run time.
func (c *Config) Validate() error {
	var errs []error
	if len(c.Accounts) == 0 {
		errs = append(errs, errors.New("at least one account is required"))
	}
	for i, a := range c.Accounts {
		if strings.TrimSpace(a.Holder) == "" {
			errs = append(errs, fmt.Errorf("accounts[%d]: holder is required", i))
		}
	}
	if c.Currency != "" && len(c.Currency) != 3 {
		errs = append(errs, fmt.Errorf("currency %q: expected a 3-letter ISO code", c.Currency))
	}
	if _, _, err := c.Amounts(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Amounts parses the scenario deposit and withdraw amounts.
func (c *Config) Amounts() (deposit, withdraw int64, err error) {
	deposit, err = amount.Parse(c.Scenario.Deposit)
	if err != nil {
		return 0, 0, fmt.Errorf("scenario.deposit: %w", err)
	}
	withdraw, err = amount.Parse(c.Scenario.Withdraw)
	if err != nil {
		return 0, 0, fmt.Errorf("scenario.withdraw: %w", err)
	}
	return deposit, withdraw, nil
}
