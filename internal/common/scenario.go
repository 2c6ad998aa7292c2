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

package common

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"account-state-go/internal/account"
	"account-state-go/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

type OperationConfig struct {
	Type   string `yaml:"type"`
	Amount string `yaml:"amount"`
}

type ScenarioFile struct {
	Name       string            `yaml:"name"`
	Operations []OperationConfig `yaml:"operations"`
}

// ScenarioStep is a validated operation ready to replay
type ScenarioStep struct {
	Operation models.Operation
	Amount    decimal.Decimal
}

type Scenario struct {
	Name  string
	Steps []ScenarioStep
}

func LoadScenario(scenarioFile string) (*Scenario, error) {
	var scenarioPath string
	if filepath.IsAbs(scenarioFile) {
		scenarioPath = scenarioFile
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		scenarioPath = filepath.Join(wd, scenarioFile)
	}

	data, err := os.ReadFile(scenarioPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", scenarioFile, err)
	}

	var config ScenarioFile
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", scenarioFile, err)
	}

	steps, err := buildSteps(config.Operations)
	if err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", scenarioFile, err)
	}

	name := config.Name
	if name == "" {
		name = filepath.Base(scenarioFile)
	}

	return &Scenario{Name: name, Steps: steps}, nil
}

// ParseOperations reads inline operations such as "deposit:1000,withdraw:600"
func ParseOperations(inline string) (*Scenario, error) {
	var ops []OperationConfig
	for _, part := range strings.Split(inline, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		opType, amount, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("operation %q must be of the form type:amount", part)
		}
		ops = append(ops, OperationConfig{Type: strings.TrimSpace(opType), Amount: strings.TrimSpace(amount)})
	}

	steps, err := buildSteps(ops)
	if err != nil {
		return nil, err
	}
	return &Scenario{Name: "inline", Steps: steps}, nil
}

func buildSteps(ops []OperationConfig) ([]ScenarioStep, error) {
	if len(ops) == 0 {
		return nil, errors.New("no operations defined")
	}

	steps := make([]ScenarioStep, len(ops))
	for i, op := range ops {
		operation := models.Operation(strings.ToLower(op.Type))
		if !operation.Valid() {
			return nil, fmt.Errorf("operation at index %d: %w: %q", i, account.ErrUnknownOperation, op.Type)
		}
		if op.Amount == "" {
			return nil, fmt.Errorf("operation at index %d missing amount", i)
		}
		amount, err := decimal.NewFromString(op.Amount)
		if err != nil {
			return nil, fmt.Errorf("operation at index %d has invalid amount %q: %w", i, op.Amount, err)
		}
		steps[i] = ScenarioStep{Operation: operation, Amount: amount}
	}
	return steps, nil
}

// ReplayStats summarizes a scenario run
type ReplayStats struct {
	Applied     int
	Refused     int
	Rejected    int
	Transitions int
}

// Replay applies every step to acct in order. Steps rejected by the account
// (for example a non-positive amount) are logged and skipped unless failFast
// is set, in which case the first rejection is returned.
func Replay(acct *account.Account, scenario *Scenario, failFast bool, logger *zap.Logger) ([]models.Event, ReplayStats, error) {
	var (
		events []models.Event
		stats  ReplayStats
	)

	for i, step := range scenario.Steps {
		var (
			event models.Event
			err   error
		)
		switch step.Operation {
		case models.OperationDeposit:
			event, err = acct.Deposit(step.Amount)
		case models.OperationWithdraw:
			event, err = acct.Withdraw(step.Amount)
		default:
			err = fmt.Errorf("%w: %q", account.ErrUnknownOperation, step.Operation)
		}

		if err != nil {
			stats.Rejected++
			if failFast {
				return events, stats, fmt.Errorf("step %d: %w", i, err)
			}
			logger.Warn("Skipping rejected operation",
				zap.Int("step", i),
				zap.String("operation", string(step.Operation)),
				zap.String("amount", step.Amount.String()),
				zap.Error(err))
			continue
		}

		events = append(events, event)
		if event.Refused {
			stats.Refused++
		} else {
			stats.Applied++
		}
		if event.Transitioned() {
			stats.Transitions++
		}
	}

	return events, stats, nil
}
