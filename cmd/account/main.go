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

package main

import (
	"flag"
	"fmt"
	"log"

	"account-state-go/internal/account"
	"account-state-go/internal/common"
	"account-state-go/internal/config"
	"account-state-go/internal/models"

	"go.uber.org/zap"
)

func loadScenario(cfg *models.Config, scenarioFlag, opsFlag string) (*common.Scenario, error) {
	if opsFlag != "" {
		return common.ParseOperations(opsFlag)
	}

	file := cfg.Scenario.File
	if scenarioFlag != "" {
		file = scenarioFlag
	}
	return common.LoadScenario(file)
}

func printEvents(events []models.Event) {
	for i, event := range events {
		isLast := i == len(events)-1
		fmt.Println(common.FormatEvent(event, isLast))
	}
}

func printAccountHeader(acct *account.Account, scenario *common.Scenario) {
	fmt.Printf("\n┌─ Scenario: %s\n", scenario.Name)
	fmt.Printf("│  Account: %s\n", acct.Id())
	fmt.Printf("│  Opening: %s (%s)\n", acct.Balance().String(), acct.State())
	fmt.Printf("│  Operations: %d\n", len(scenario.Steps))
	common.PrintBoxSeparator(78)
}

func main() {
	scenarioFlag := flag.String("scenario", "", "Path to a YAML scenario file (defaults to SCENARIO_FILE)")
	opsFlag := flag.String("ops", "", "Inline operations, e.g. deposit:1000,withdraw:600 (overrides -scenario)")
	failFastFlag := flag.Bool("fail-fast", false, "Stop at the first rejected operation")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, loggerCleanup := common.InitializeLogger(cfg.LogLevel)
	defer loggerCleanup()

	logger.Info("Starting account scenario replay")

	scenario, err := loadScenario(cfg, *scenarioFlag, *opsFlag)
	if err != nil {
		logger.Fatal("Failed to load scenario", zap.Error(err))
	}

	recorder := &account.Recorder{}
	acct, err := account.New(
		account.WithPolicy(account.PolicyFromConfig(cfg.Account)),
		account.WithNotifier(account.MultiNotifier{recorder, account.NewZapNotifier(logger)}),
	)
	if err != nil {
		logger.Fatal("Failed to open account", zap.Error(err))
	}

	common.PrintHeader("ACCOUNT STATE REPORT", common.DefaultWidth)
	printAccountHeader(acct, scenario)

	events, stats, err := common.Replay(acct, scenario, cfg.Scenario.FailFast || *failFastFlag, logger)
	printEvents(events)
	if err != nil {
		logger.Error("Scenario aborted", zap.Error(err))
	}

	summary := fmt.Sprintf("SUMMARY: final balance %s (%s) after %d applied, %d refused, %d rejected operations, %d transitions",
		acct.Balance().String(), acct.State(), stats.Applied, stats.Refused, stats.Rejected, len(recorder.Transitions()))
	common.PrintFooter(summary, common.DefaultWidth)

	logger.Info("Scenario replay completed",
		zap.String("account_id", acct.Id()),
		zap.String("balance", acct.Balance().String()),
		zap.Stringer("state", acct.State()),
		zap.Int("applied", stats.Applied),
		zap.Int("refused", stats.Refused),
		zap.Int("rejected", stats.Rejected),
		zap.Int("transitions", stats.Transitions))
}
