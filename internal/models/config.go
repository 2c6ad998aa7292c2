package models

import "github.com/shopspring/decimal"

// Config represents the application configuration
type Config struct {
	Account  AccountConfig
	Scenario ScenarioConfig
	LogLevel string
}

// AccountConfig holds the balance thresholds used by new accounts
type AccountConfig struct {
	InitialBalance     decimal.Decimal
	GoldThreshold      decimal.Decimal
	OverdrawnThreshold decimal.Decimal
	GoldBonusRate      decimal.Decimal
}

// ScenarioConfig holds settings for the replay command
type ScenarioConfig struct {
	File     string
	FailFast bool
}
