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
	"account-state-go/internal/models"

	"go.uber.org/zap"
)

// Notifier receives one event per completed deposit or withdrawal
type Notifier interface {
	Notify(event models.Event)
}

type NopNotifier struct{}

func (NopNotifier) Notify(models.Event) {}

// ZapNotifier writes events to a zap logger. Refused withdrawals are logged
// at warn level, everything else at info.
type ZapNotifier struct {
	logger *zap.Logger
}

// NewZapNotifier falls back to the global logger when logger is nil
func NewZapNotifier(logger *zap.Logger) *ZapNotifier {
	if logger == nil {
		logger = zap.L()
	}
	return &ZapNotifier{logger: logger}
}

func (n *ZapNotifier) Notify(event models.Event) {
	fields := []zap.Field{
		zap.String("event_id", event.Id),
		zap.String("account_id", event.AccountId),
		zap.String("operation", string(event.Operation)),
		zap.String("amount", event.Amount.String()),
		zap.String("balance_before", event.BalanceBefore.String()),
		zap.String("balance_after", event.BalanceAfter.String()),
		zap.Stringer("from_state", event.From),
		zap.Stringer("to_state", event.To),
	}
	if !event.Bonus.IsZero() {
		fields = append(fields, zap.String("bonus", event.Bonus.String()))
	}

	if event.Refused {
		n.logger.Warn(event.Message, fields...)
		return
	}

	n.logger.Info(event.Message, fields...)
	if event.Transitioned() {
		n.logger.Info("Account state changed",
			zap.String("account_id", event.AccountId),
			zap.Stringer("from_state", event.From),
			zap.Stringer("to_state", event.To),
			zap.String("balance", event.BalanceAfter.String()))
	}
}

// Recorder keeps every event it is notified of, in order
type Recorder struct {
	events []models.Event
}

func (r *Recorder) Notify(event models.Event) {
	r.events = append(r.events, event)
}

func (r *Recorder) Events() []models.Event {
	out := make([]models.Event, len(r.events))
	copy(out, r.events)
	return out
}

// Transitions returns only the events that changed state
func (r *Recorder) Transitions() []models.Event {
	var out []models.Event
	for _, e := range r.events {
		if e.Transitioned() {
			out = append(out, e)
		}
	}
	return out
}

// MultiNotifier forwards each event to every notifier in order
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(event models.Event) {
	for _, n := range m {
		if n != nil {
			n.Notify(event)
		}
	}
}
