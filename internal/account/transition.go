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

// Outcome is the result of applying one operation to a state and balance
type Outcome struct {
	State   models.State
	Balance decimal.Decimal
	Bonus   decimal.Decimal
	Refused bool
	Message string
}

// Apply computes the next state and balance for an operation. It performs at
// most one transition and has no side effects.
func Apply(p Policy, state models.State, balance decimal.Decimal, op models.Operation, amount decimal.Decimal) (Outcome, error) {
	if !amount.IsPositive() {
		return Outcome{}, fmt.Errorf("%w: got %s", ErrInvalidAmount, amount.String())
	}

	switch op {
	case models.OperationDeposit:
		return deposit(p, state, balance, amount)
	case models.OperationWithdraw:
		return withdraw(p, state, balance, amount)
	default:
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
}

func deposit(p Policy, state models.State, balance, amount decimal.Decimal) (Outcome, error) {
	out := Outcome{State: state, Bonus: decimal.Zero}

	switch state {
	case models.StateRegular:
		out.Balance = balance.Add(amount)
		out.Message = fmt.Sprintf("In %s, depositing %s", state, amount.String())
		if out.Balance.GreaterThanOrEqual(p.GoldThreshold) {
			out.State = models.StateGold
		}
	case models.StateGold:
		out.Bonus = amount.Mul(p.GoldBonusRate)
		out.Balance = balance.Add(amount).Add(out.Bonus)
		out.Message = fmt.Sprintf("In %s, depositing %s + %s bonus: %s",
			state, amount.String(), p.BonusPercent(), out.Bonus.String())
	case models.StateOverdrawn:
		out.Balance = balance.Add(amount)
		out.Message = fmt.Sprintf("In %s, depositing %s", state, amount.String())
		if out.Balance.GreaterThanOrEqual(p.OverdrawnThreshold) {
			out.State = models.StateRegular
		}
	default:
		return Outcome{}, fmt.Errorf("deposit in unsupported state %s", state)
	}

	return out, nil
}

func withdraw(p Policy, state models.State, balance, amount decimal.Decimal) (Outcome, error) {
	out := Outcome{State: state, Bonus: decimal.Zero}

	switch state {
	case models.StateRegular:
		out.Balance = balance.Sub(amount)
		if out.Balance.LessThan(p.OverdrawnThreshold) {
			out.State = models.StateOverdrawn
		}
	case models.StateGold:
		out.Balance = balance.Sub(amount)
		switch {
		case out.Balance.LessThan(p.OverdrawnThreshold):
			out.State = models.StateOverdrawn
		case out.Balance.LessThan(p.GoldThreshold):
			out.State = models.StateRegular
		}
	case models.StateOverdrawn:
		// no further debt while overdrawn
		out.Balance = balance
		out.Refused = true
		out.Message = fmt.Sprintf("In %s, cannot withdraw, balance %s", state, balance.String())
		return out, nil
	default:
		return Outcome{}, fmt.Errorf("withdrawal in unsupported state %s", state)
	}

	out.Message = fmt.Sprintf("In %s, withdrawing %s from %s", state, amount.String(), balance.String())
	return out, nil
}
