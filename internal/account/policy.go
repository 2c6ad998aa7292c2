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

package account

import (
	"fmt"

	"account-state-go/internal/models"

	"github.com/shopspring/decimal"
)

// Policy holds the balance thresholds that drive state transitions.
// Upgrades are inclusive: a balance equal to GoldThreshold is Gold and a
// balance equal to OverdrawnThreshold is not Overdrawn.
type Policy struct {
	InitialBalance     decimal.Decimal
	GoldThreshold      decimal.Decimal
	OverdrawnThreshold decimal.Decimal
	GoldBonusRate      decimal.Decimal
}

func DefaultPolicy() Policy {
	return Policy{
		InitialBalance:     decimal.NewFromInt(200),
		GoldThreshold:      decimal.NewFromInt(1000),
		OverdrawnThreshold: decimal.Zero,
		GoldBonusRate:      decimal.RequireFromString("0.10"),
	}
}

// PolicyFromConfig converts loaded configuration into a Policy
func PolicyFromConfig(cfg models.AccountConfig) Policy {
	return Policy{
		InitialBalance:     cfg.InitialBalance,
		GoldThreshold:      cfg.GoldThreshold,
		OverdrawnThreshold: cfg.OverdrawnThreshold,
		GoldBonusRate:      cfg.GoldBonusRate,
	}
}

func (p Policy) Validate() error {
	if !p.GoldThreshold.GreaterThan(p.OverdrawnThreshold) {
		return fmt.Errorf("%w: gold threshold %s must be above overdrawn threshold %s",
			ErrInvalidPolicy, p.GoldThreshold.String(), p.OverdrawnThreshold.String())
	}
	if p.GoldBonusRate.IsNegative() {
		return fmt.Errorf("%w: gold bonus rate cannot be negative, got %s", ErrInvalidPolicy, p.GoldBonusRate.String())
	}
	return nil
}

// Classify returns the state a balance belongs to with no history.
// Only used for the opening balance; afterwards states follow Apply.
func (p Policy) Classify(balance decimal.Decimal) models.State {
	switch {
	case balance.LessThan(p.OverdrawnThreshold):
		return models.StateOverdrawn
	case balance.GreaterThanOrEqual(p.GoldThreshold):
		return models.StateGold
	default:
		return models.StateRegular
	}
}

// BonusPercent renders the gold bonus rate as a percentage, e.g. "10%"
func (p Policy) BonusPercent() string {
	return p.GoldBonusRate.Mul(decimal.NewFromInt(100)).String() + "%"
}
