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
	"time"

	"account-state-go/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is a balance with a classification state. Every Deposit and
// Withdraw updates the balance and re-evaluates the state before returning.
//
// An Account is not safe for concurrent use; callers sharing one must
// serialize access.
type Account struct {
	id       string
	policy   Policy
	state    models.State
	balance  decimal.Decimal
	notifier Notifier
	now      func() time.Time
}

type Option func(*Account)

func WithPolicy(policy Policy) Option {
	return func(a *Account) {
		a.policy = policy
	}
}

func WithNotifier(notifier Notifier) Option {
	return func(a *Account) {
		if notifier != nil {
			a.notifier = notifier
		}
	}
}

func WithId(id string) Option {
	return func(a *Account) {
		if id != "" {
			a.id = id
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(a *Account) {
		if now != nil {
			a.now = now
		}
	}
}

// New opens an account at the policy's initial balance (200 and Regular by default)
func New(opts ...Option) (*Account, error) {
	a := &Account{
		id:       uuid.New().String(),
		policy:   DefaultPolicy(),
		notifier: NopNotifier{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	if err := a.policy.Validate(); err != nil {
		return nil, err
	}

	a.balance = a.policy.InitialBalance
	a.state = a.policy.Classify(a.balance)
	return a, nil
}

func (a *Account) Id() string {
	return a.id
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

func (a *Account) State() models.State {
	return a.state
}

func (a *Account) Policy() Policy {
	return a.policy
}

// Deposit credits amount, adding the gold bonus while in Gold
func (a *Account) Deposit(amount decimal.Decimal) (models.Event, error) {
	return a.apply(models.OperationDeposit, amount)
}

// Withdraw debits amount. While Overdrawn the withdrawal is refused: the
// returned event has Refused set and balance and state are unchanged.
func (a *Account) Withdraw(amount decimal.Decimal) (models.Event, error) {
	return a.apply(models.OperationWithdraw, amount)
}

func (a *Account) apply(op models.Operation, amount decimal.Decimal) (models.Event, error) {
	out, err := Apply(a.policy, a.state, a.balance, op, amount)
	if err != nil {
		return models.Event{}, err
	}

	event := models.Event{
		Id:            uuid.New().String(),
		AccountId:     a.id,
		Operation:     op,
		Amount:        amount,
		Bonus:         out.Bonus,
		BalanceBefore: a.balance,
		BalanceAfter:  out.Balance,
		From:          a.state,
		To:            out.State,
		Refused:       out.Refused,
		Message:       out.Message,
		OccurredAt:    a.now(),
	}

	a.balance = out.Balance
	a.state = out.State

	a.notifier.Notify(event)
	return event, nil
}
