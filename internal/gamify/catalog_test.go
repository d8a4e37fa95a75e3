package gamify

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DVDHSN/EcoBudget/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Monday 2026-08-31; most recent full weekend is Aug 29-30.
var testNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func expense(date model.Date, category, amount string) model.Transaction {
	return model.Transaction{ID: model.NewID(), Type: model.TypeExpense, Amount: dec(amount), Category: category, Date: date}
}

func TestCatalogOrder(t *testing.T) {
	defs := Challenges()
	require.Len(t, defs, 8)
	ids := make([]string, len(defs))
	for i, d := range defs {
		ids[i] = d.ID
	}
	assert.Equal(t, []string{"c1", "c2", "c3", "c4", "c8", "c5", "c6", "c7"}, ids)
}

func TestNoEatOutWeek(t *testing.T) {
	today := model.DateOf(testNow)

	tests := []struct {
		name string
		txs  []model.Transaction
		want bool
	}{
		{name: "no activity at all", txs: nil, want: false},
		{
			name: "active week without dining",
			txs:  []model.Transaction{expense(today, "Groceries", "40")},
			want: true,
		},
		{
			name: "dining inside the window fails",
			txs: []model.Transaction{
				expense(today, "Groceries", "40"),
				expense(today.AddDays(-3), "Fast Food", "12"),
			},
			want: false,
		},
		{
			name: "old dining outside the window is fine",
			txs: []model.Transaction{
				expense(today, "Groceries", "40"),
				expense(today.AddDays(-20), "Restaurants", "60"),
			},
			want: true,
		},
		{
			name: "stale-only activity fails the freshness check",
			txs:  []model.Transaction{expense(today.AddDays(-20), "Groceries", "40")},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, noEatOutWeek(model.DefaultStats(), tt.txs, testNow))
		})
	}
}

func TestReduceExpenses(t *testing.T) {
	today := model.DateOf(testNow)
	lastWeek := today.AddDays(-10)

	tests := []struct {
		name string
		txs  []model.Transaction
		want bool
	}{
		{
			name: "spent 80 last week, 40 this week",
			txs: []model.Transaction{
				expense(lastWeek, "Shopping", "80"),
				expense(today, "Shopping", "40"),
			},
			want: true,
		},
		{
			name: "margin under 20 fails",
			txs: []model.Transaction{
				expense(lastWeek, "Shopping", "80"),
				expense(today, "Shopping", "65"),
			},
			want: false,
		},
		{
			name: "last week too small to count",
			txs: []model.Transaction{
				expense(lastWeek, "Shopping", "30"),
				expense(today, "Shopping", "5"),
			},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reduceExpenses(model.DefaultStats(), tt.txs, testNow))
		})
	}
}

func TestNoSpendWeekend(t *testing.T) {
	saturday := model.Date("2026-08-29")
	sunday := model.Date("2026-08-30")
	earlier := model.Date("2026-08-20")

	tests := []struct {
		name string
		now  time.Time
		txs  []model.Transaction
		want bool
	}{
		{
			name: "quiet weekend with prior history",
			now:  testNow,
			txs:  []model.Transaction{expense(earlier, "Groceries", "25")},
			want: true,
		},
		{
			name: "saturday spend fails",
			now:  testNow,
			txs: []model.Transaction{
				expense(earlier, "Groceries", "25"),
				expense(saturday, "Shopping", "15"),
			},
			want: false,
		},
		{
			name: "no history before the weekend",
			now:  testNow,
			txs:  []model.Transaction{expense(sunday.AddDays(1), "Groceries", "25")},
			want: false,
		},
		{
			name: "on a Sunday the previous weekend is judged",
			now:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
			txs: []model.Transaction{
				expense(earlier, "Groceries", "25"),
				// this weekend's spend must not count
				expense(sunday, "Shopping", "99"),
			},
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, noSpendWeekend(model.DefaultStats(), tt.txs, tt.now))
		})
	}
}

func TestStatsCriteria(t *testing.T) {
	c3, ok := ChallengeByID("c3")
	require.True(t, ok)
	stats := model.DefaultStats()
	assert.False(t, c3.Criteria(stats, nil, testNow))
	stats.TotalSavings = dec("100")
	assert.True(t, c3.Criteria(stats, nil, testNow))

	c5, ok := ChallengeByID("c5")
	require.True(t, ok)
	assert.False(t, c5.Criteria(model.DefaultStats(), nil, testNow))
	stats.SavingsGoals = []model.SavingsGoal{{Name: "Trip", Target: dec("500")}}
	assert.True(t, c5.Criteria(stats, nil, testNow))

	c6, ok := ChallengeByID("c6")
	require.True(t, ok)
	stats.MonthlyExpenses = dec("499.99")
	assert.False(t, c6.Criteria(stats, nil, testNow))
	stats.MonthlyExpenses = dec("500")
	assert.True(t, c6.Criteria(stats, nil, testNow))

	c8, ok := ChallengeByID("c8")
	require.True(t, ok)
	assert.False(t, c8.Criteria(stats, nil, testNow))
	income := model.Transaction{ID: "i", Type: model.TypeIncome, Amount: dec("100"), Category: "Salary", Date: "2026-08-31"}
	assert.True(t, c8.Criteria(stats, []model.Transaction{income}, testNow))
}
