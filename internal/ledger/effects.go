// Package ledger implements the transaction-effect arithmetic at the heart
// of the budget: how a single transaction moves the derived aggregates, how
// the activity streak is computed, and how the transaction list is exported.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/DVDHSN/EcoBudget/internal/model"
)

// ApplyEffect is the single source of truth for how a transaction mutates
// the stats aggregate and the capsule set. sign is +1 to apply and -1 to
// revert; applying then reverting restores the inputs exactly.
//
// The inputs are never mutated; fresh copies are returned.
func ApplyEffect(tx model.Transaction, stats model.UserStats, capsules []model.Capsule, sign int) (model.UserStats, []model.Capsule) {
	amount := tx.Amount.Mul(decimal.NewFromInt(int64(sign)))

	newStats := stats.Clone()
	newCapsules := make([]model.Capsule, len(capsules))
	copy(newCapsules, capsules)

	switch tx.Type {
	case model.TypeIncome:
		newStats.CurrentBalance = newStats.CurrentBalance.Add(amount)

	case model.TypeExpense:
		newStats.CurrentBalance = newStats.CurrentBalance.Sub(amount)
		newStats.MonthlyExpenses = newStats.MonthlyExpenses.Add(amount)
		for i := range newCapsules {
			if newCapsules[i].Matches(tx.Category) {
				newCapsules[i].Spent = clampZero(newCapsules[i].Spent.Add(amount))
			}
		}

	case model.TypeSavings:
		// Savings transfers move money out of the balance and onto the
		// parallel savings ledger; the matching goal tracks its share.
		newStats.CurrentBalance = newStats.CurrentBalance.Sub(amount)
		newStats.TotalSavings = newStats.TotalSavings.Add(amount)
		if goal := newStats.Goal(tx.Category); goal != nil {
			goal.Current = clampZero(goal.Current.Add(amount))
		}
	}

	return newStats, newCapsules
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.Sign() < 0 {
		return decimal.Zero
	}
	return d
}
