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
	"fmt"
	"strings"
)

// State is the classification of an account
type State int

const (
	StateRegular State = iota
	StateGold
	StateOverdrawn
)

func (s State) String() string {
	switch s {
	case StateRegular:
		return "Regular"
	case StateGold:
		return "Gold"
	case StateOverdrawn:
		return "Overdrawn"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ParseState is case-insensitive
func ParseState(name string) (State, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "regular":
		return StateRegular, nil
	case "gold":
		return StateGold, nil
	case "overdrawn":
		return StateOverdrawn, nil
	}
	return StateRegular, fmt.Errorf("unknown account state %q", name)
}

// Operation is a request made against an account
type Operation string

const (
	OperationDeposit  Operation = "deposit"
	OperationWithdraw Operation = "withdraw"
)

func (o Operation) Valid() bool {
	return o == OperationDeposit || o == OperationWithdraw
}
