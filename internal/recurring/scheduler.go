// Package recurring materializes due instances of recurring-transaction
// rules into concrete ledger transactions.
package recurring

import (
	"log/slog"
	"time"

	"github.com/DVDHSN/EcoBudget/internal/ledger"
	"github.com/DVDHSN/EcoBudget/internal/model"
)

// Result carries everything a catch-up pass produced. Transactions are in
// the order they were materialized (rule order, chronological within each
// rule); the caller reverses the batch before prepending it to the ledger
// so global recency order is preserved.
type Result struct {
	Transactions []model.Transaction
	Stats        model.UserStats
	Capsules     []model.Capsule
	Rules        []model.RecurringTransaction
	Changed      bool
}

// Process replays every rule up to today: while a rule's NextDate is not in
// the future, a transaction dated NextDate is synthesized, its effect
// applied to the running stats/capsule accumulator, and NextDate advanced
// by the rule's interval. Rules whose NextDate is already past today are
// untouched, which makes repeated passes idempotent.
func Process(rules []model.RecurringTransaction, stats model.UserStats, capsules []model.Capsule, now time.Time) Result {
	today := model.DateOf(now)

	res := Result{
		Stats:    stats,
		Capsules: capsules,
		Rules:    make([]model.RecurringTransaction, len(rules)),
	}
	copy(res.Rules, rules)

	for i := range res.Rules {
		rule := &res.Rules[i]
		count := 0
		for !rule.NextDate.After(today) {
			tx := materialize(*rule, rule.NextDate)
			res.Transactions = append(res.Transactions, tx)
			res.Stats, res.Capsules = ledger.ApplyEffect(tx, res.Stats, res.Capsules, +1)
			rule.NextDate = rule.Interval.Next(rule.NextDate)
			res.Changed = true
			count++
		}
		if count > 0 {
			slog.Info("materialized recurring transactions",
				"rule_id", rule.ID,
				"category", rule.Category,
				"count", count,
				"next_date", rule.NextDate)
		}
	}

	return res
}

func materialize(rule model.RecurringTransaction, date model.Date) model.Transaction {
	note := "(Recurring)"
	if rule.Note != "" {
		note = "(Recurring) " + rule.Note
	}
	return model.Transaction{
		ID:       model.NewID(),
		Type:     rule.Type,
		Amount:   rule.Amount,
		Category: rule.Category,
		Date:     date,
		Icon:     rule.Icon,
		Note:     note,
	}
}
