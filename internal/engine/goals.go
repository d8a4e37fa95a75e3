package engine

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/DVDHSN/EcoBudget/internal/model"
	"github.com/DVDHSN/EcoBudget/internal/storage"
)

// ErrDuplicateGoal is returned when a goal with the same name exists; the
// goal name is the unique key savings transactions reference.
var ErrDuplicateGoal = errors.New("savings goal already exists")

// AddSavingsGoal creates a new savings goal. Goal mutations feed the
// challenge-evaluation pass (the Goal Setter challenge watches the goal
// count).
func (e *Engine) AddSavingsGoal(ctx context.Context, name string, target, current decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return model.ErrEmptyName
	}
	if target.Sign() <= 0 {
		return model.ErrInvalidTarget
	}
	if current.Sign() < 0 {
		return model.ErrInvalidAmount
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stats.Goal(name) != nil {
		return ErrDuplicateGoal
	}
	e.stats.SavingsGoals = append(e.stats.SavingsGoals, model.SavingsGoal{
		Name:    name,
		Target:  target,
		Current: current,
	})
	e.evaluateChallenges(ctx)
	e.saveSlot(ctx, storage.KeyStats, e.stats)

	slog.Info("savings goal added", "name", name, "target", target)
	return nil
}

// UpdateSavingsGoal adjusts a goal's saved amount directly (outside the
// ledger), moving total savings with it. Unknown names are a silent no-op.
func (e *Engine) UpdateSavingsGoal(ctx context.Context, name string, delta decimal.Decimal) {
	e.mu.Lock()
	defer e.mu.Unlock()

	goal := e.stats.Goal(name)
	if goal == nil {
		slog.Debug("update ignored, savings goal not found", "name", name)
		return
	}
	goal.Current = goal.Current.Add(delta)
	e.stats.TotalSavings = e.stats.TotalSavings.Add(delta)
	e.evaluateChallenges(ctx)
	e.saveSlot(ctx, storage.KeyStats, e.stats)
}

// EditSavingsGoal replaces a goal's name, target, and saved amount. Total
// savings is recomputed as the sum over all goals, and a rename rewrites
// the category of the savings transactions that reference the goal.
func (e *Engine) EditSavingsGoal(ctx context.Context, oldName, name string, target, current decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return model.ErrEmptyName
	}
	if target.Sign() <= 0 {
		return model.ErrInvalidTarget
	}
	if current.Sign() < 0 {
		return model.ErrInvalidAmount
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	goal := e.stats.Goal(oldName)
	if goal == nil {
		slog.Debug("edit ignored, savings goal not found", "name", oldName)
		return nil
	}
	goal.Name = name
	goal.Target = target
	goal.Current = current

	total := decimal.Zero
	for _, g := range e.stats.SavingsGoals {
		total = total.Add(g.Current)
	}
	e.stats.TotalSavings = total

	if oldName != name {
		for i := range e.transactions {
			if e.transactions[i].Type == model.TypeSavings && e.transactions[i].Category == oldName {
				e.transactions[i].Category = name
			}
		}
		e.saveSlot(ctx, storage.KeyTransactions, e.transactions)
	}

	e.evaluateChallenges(ctx)
	e.saveSlot(ctx, storage.KeyStats, e.stats)

	slog.Info("savings goal edited", "old_name", oldName, "name", name)
	return nil
}

// DeleteSavingsGoal removes a goal and subtracts its saved amount from
// total savings, clamped at zero.
func (e *Engine) DeleteSavingsGoal(ctx context.Context, name string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.stats.SavingsGoals {
		if e.stats.SavingsGoals[i].Name != name {
			continue
		}
		removed := e.stats.SavingsGoals[i]
		e.stats.SavingsGoals = append(e.stats.SavingsGoals[:i], e.stats.SavingsGoals[i+1:]...)
		e.stats.TotalSavings = e.stats.TotalSavings.Sub(removed.Current)
		if e.stats.TotalSavings.Sign() < 0 {
			e.stats.TotalSavings = decimal.Zero
		}
		e.evaluateChallenges(ctx)
		e.saveSlot(ctx, storage.KeyStats, e.stats)
		slog.Info("savings goal deleted", "name", name)
		return
	}
	slog.Debug("delete ignored, savings goal not found", "name", name)
}
