package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"

	"github.com/api-sage/core-banking-ledger/internal/ledger"
)

const envPrefix = "BANK"

// Config is loaded from the environment with BANK_ prefixed variables.
// Every policy amount has the product default baked in.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	DailyWithdrawalLimit  decimal.Decimal `envconfig:"DAILY_WITHDRAWAL_LIMIT" default:"500"`
	InsufficientFundsFee  decimal.Decimal `envconfig:"INSUFFICIENT_FUNDS_FEE" default:"5"`
	MinBalanceForInterest decimal.Decimal `envconfig:"MIN_BALANCE_FOR_INTEREST" default:"500"`
	DefaultSavingsRate    decimal.Decimal `envconfig:"DEFAULT_SAVINGS_RATE" default:"0.02"`

	LargeTransactionLimit decimal.Decimal `envconfig:"LARGE_TRANSACTION_LIMIT" default:"10000"`
	ConsecutiveMaxGap     time.Duration   `envconfig:"CONSECUTIVE_MAX_GAP" default:"5m"`

	AdminUsername string `envconfig:"ADMIN_USERNAME" default:"supervisor"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"Sup3rvisor!"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}

	if cfg.DailyWithdrawalLimit.IsNegative() {
		return Config{}, fmt.Errorf("daily withdrawal limit cannot be negative")
	}
	if cfg.InsufficientFundsFee.IsNegative() {
		return Config{}, fmt.Errorf("insufficient funds fee cannot be negative")
	}
	if cfg.DefaultSavingsRate.IsNegative() {
		return Config{}, fmt.Errorf("default savings rate cannot be negative")
	}
	if cfg.LargeTransactionLimit.IsNegative() {
		return Config{}, fmt.Errorf("large transaction limit cannot be negative")
	}
	if cfg.ConsecutiveMaxGap <= 0 {
		return Config{}, fmt.Errorf("consecutive max gap must be positive")
	}

	return cfg, nil
}

func (c Config) Limits() ledger.Limits {
	return ledger.Limits{
		DailyWithdrawalLimit:  c.DailyWithdrawalLimit,
		InsufficientFundsFee:  c.InsufficientFundsFee,
		MinBalanceForInterest: c.MinBalanceForInterest,
		DefaultSavingsRate:    c.DefaultSavingsRate,
	}
}

func (c Config) ScannerConfig() ledger.ScannerConfig {
	return ledger.ScannerConfig{
		LargeAmountThreshold: c.LargeTransactionLimit,
		ConsecutiveMaxGap:    c.ConsecutiveMaxGap,
	}
}
