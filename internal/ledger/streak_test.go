package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/DVDHSN/EcoBudget/internal/model"
)

func TestStreak(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	today := model.DateOf(now)

	txOn := func(dates ...model.Date) []model.Transaction {
		txs := make([]model.Transaction, len(dates))
		for i, d := range dates {
			txs[i] = model.Transaction{ID: model.NewID(), Type: model.TypeExpense, Date: d}
		}
		return txs
	}

	tests := []struct {
		name string
		txs  []model.Transaction
		want int
	}{
		{name: "empty ledger", txs: nil, want: 0},
		{name: "three consecutive days ending today", txs: txOn(today, today.AddDays(-1), today.AddDays(-2)), want: 3},
		{name: "streak ending yesterday still counts", txs: txOn(today.AddDays(-1), today.AddDays(-2)), want: 2},
		{name: "last activity two days ago", txs: txOn(today.AddDays(-2)), want: 0},
		{name: "gap breaks the streak", txs: txOn(today, today.AddDays(-2)), want: 1},
		{name: "duplicate dates count once", txs: txOn(today, today, today.AddDays(-1)), want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Streak(tt.txs, now))
		})
	}
}
