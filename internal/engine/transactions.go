package engine

import (
	"context"
	"io"
	"log/slog"

	"github.com/DVDHSN/EcoBudget/internal/ledger"
	"github.com/DVDHSN/EcoBudget/internal/model"
)

// AddTransaction validates the input, assigns a fresh id, prepends the
// transaction to the ledger (most-recent-first), and applies its effect.
func (e *Engine) AddTransaction(ctx context.Context, tx model.Transaction) (model.Transaction, error) {
	if tx.Date == "" {
		tx.Date = model.DateOf(e.cfg.Now())
	}
	if err := tx.Validate(); err != nil {
		return model.Transaction{}, err
	}
	tx.ID = model.NewID()

	e.mu.Lock()
	defer e.mu.Unlock()

	e.transactions = append([]model.Transaction{tx}, e.transactions...)
	e.stats, e.capsules = ledger.ApplyEffect(tx, e.stats, e.capsules, +1)
	e.afterLedgerChange(ctx)

	slog.Info("transaction added", "id", tx.ID, "type", tx.Type, "amount", tx.Amount, "category", tx.Category)
	return tx, nil
}

// EditTransaction replaces a transaction in place. The old effect is
// reverted before the new one is applied so capsule and goal matching see
// the post-revert state. Editing an unknown id is a silent no-op.
func (e *Engine) EditTransaction(ctx context.Context, id string, updated model.Transaction) error {
	if updated.Date == "" {
		updated.Date = model.DateOf(e.cfg.Now())
	}
	if err := updated.Validate(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.findTransaction(id)
	if idx < 0 {
		slog.Debug("edit ignored, transaction not found", "id", id)
		return nil
	}

	old := e.transactions[idx]
	updated.ID = old.ID

	stats, capsules := ledger.ApplyEffect(old, e.stats, e.capsules, -1)
	e.stats, e.capsules = ledger.ApplyEffect(updated, stats, capsules, +1)
	e.transactions[idx] = updated
	e.afterLedgerChange(ctx)

	slog.Info("transaction edited", "id", id)
	return nil
}

// DeleteTransaction reverts and removes a transaction. The removed
// transaction is returned so callers can offer a single-step undo by
// re-adding it; ok is false when the id is unknown.
func (e *Engine) DeleteTransaction(ctx context.Context, id string) (model.Transaction, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.findTransaction(id)
	if idx < 0 {
		slog.Debug("delete ignored, transaction not found", "id", id)
		return model.Transaction{}, false
	}

	tx := e.transactions[idx]
	e.stats, e.capsules = ledger.ApplyEffect(tx, e.stats, e.capsules, -1)
	e.transactions = append(e.transactions[:idx], e.transactions[idx+1:]...)
	e.afterLedgerChange(ctx)

	slog.Info("transaction deleted", "id", id)
	return tx, true
}

// Transactions returns a copy of the ledger in recency order.
func (e *Engine) Transactions() []model.Transaction {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]model.Transaction, len(e.transactions))
	copy(out, e.transactions)
	return out
}

// Stats returns a copy of the derived aggregate.
func (e *Engine) Stats() model.UserStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats.Clone()
}

// ExportCSV writes the ledger to w in the export wire format.
func (e *Engine) ExportCSV(w io.Writer) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ledger.ExportCSV(w, e.transactions, e.currency)
}

// findTransaction returns the index of id, or -1. Caller holds the lock.
func (e *Engine) findTransaction(id string) int {
	for i := range e.transactions {
		if e.transactions[i].ID == id {
			return i
		}
	}
	return -1
}
