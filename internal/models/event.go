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

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event describes the outcome of a single deposit or withdrawal
type Event struct {
	Id            string          `json:"id"`
	AccountId     string          `json:"account_id"`
	Operation     Operation       `json:"operation"`
	Amount        decimal.Decimal `json:"amount"`
	Bonus         decimal.Decimal `json:"bonus"`
	BalanceBefore decimal.Decimal `json:"balance_before"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
	From          State           `json:"from"`
	To            State           `json:"to"`
	Refused       bool            `json:"refused"` // withdrawal while overdrawn
	Message       string          `json:"message"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

// Transitioned reports whether the operation moved the account to another state
func (e Event) Transitioned() bool {
	return e.From != e.To
}
