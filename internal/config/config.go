/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"fmt"
	"os"
	"strconv"

	"account-state-go/internal/models"

	"github.com/shopspring/decimal"
)

func Load() (*models.Config, error) {
	initialBalance, err := getEnvDecimal("ACCOUNT_INITIAL_BALANCE", decimal.NewFromInt(200))
	if err != nil {
		return nil, err
	}

	goldThreshold, err := getEnvDecimal("ACCOUNT_GOLD_THRESHOLD", decimal.NewFromInt(1000))
	if err != nil {
		return nil, err
	}

	overdrawnThreshold, err := getEnvDecimal("ACCOUNT_OVERDRAWN_THRESHOLD", decimal.Zero)
	if err != nil {
		return nil, err
	}

	goldBonusRate, err := getEnvDecimal("ACCOUNT_GOLD_BONUS_RATE", decimal.RequireFromString("0.10"))
	if err != nil {
		return nil, err
	}

	return &models.Config{
		Account: models.AccountConfig{
			InitialBalance:     initialBalance,
			GoldThreshold:      goldThreshold,
			OverdrawnThreshold: overdrawnThreshold,
			GoldBonusRate:      goldBonusRate,
		},
		Scenario: models.ScenarioConfig{
			File:     getEnvString("SCENARIO_FILE", "scenario.yaml"),
			FailFast: getEnvBool("SCENARIO_FAIL_FAST", false),
		},
		LogLevel: getEnvString("LOG_LEVEL", "info"),
	}, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDecimal(key string, defaultValue decimal.Decimal) (decimal.Decimal, error) {
	if value := os.Getenv(key); value != "" {
		amount, err := decimal.NewFromString(value)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid decimal for %s: %q (%w)", key, value, err)
		}
		return amount, nil
	}
	return defaultValue, nil
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
