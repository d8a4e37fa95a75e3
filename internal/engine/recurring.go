package engine

import (
	"context"
	"log/slog"

	"github.com/DVDHSN/EcoBudget/internal/model"
	"github.com/DVDHSN/EcoBudget/internal/storage"
)

// AddRecurringRule registers a recurring-transaction rule and immediately
// replays it, so a rule whose start date is in the past materializes its
// overdue instances right away.
func (e *Engine) AddRecurringRule(ctx context.Context, rule model.RecurringTransaction) (model.RecurringTransaction, error) {
	rule.NextDate = rule.StartDate
	if err := rule.Validate(); err != nil {
		return model.RecurringTransaction{}, err
	}
	rule.ID = model.NewID()

	e.mu.Lock()
	defer e.mu.Unlock()

	e.rules = append(e.rules, rule)
	e.saveSlot(ctx, storage.KeyRecurring, e.rules)
	e.catchUpRecurring(ctx)

	// catchUpRecurring advanced NextDate; report the stored rule.
	for _, r := range e.rules {
		if r.ID == rule.ID {
			rule = r
			break
		}
	}
	slog.Info("recurring rule added", "id", rule.ID, "interval", rule.Interval, "next_date", rule.NextDate)
	return rule, nil
}

// DeleteRecurringRule removes a rule; already-materialized transactions
// stay in the ledger. Returns false when the id is unknown.
func (e *Engine) DeleteRecurringRule(ctx context.Context, id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.rules {
		if e.rules[i].ID != id {
			continue
		}
		e.rules = append(e.rules[:i], e.rules[i+1:]...)
		e.saveSlot(ctx, storage.KeyRecurring, e.rules)
		slog.Info("recurring rule deleted", "id", id)
		return true
	}
	return false
}

// RecurringRules returns a copy of the registered rules.
func (e *Engine) RecurringRules() []model.RecurringTransaction {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]model.RecurringTransaction, len(e.rules))
	copy(out, e.rules)
	return out
}
