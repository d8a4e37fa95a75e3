package model

import "github.com/shopspring/decimal"

// SavingsGoal is a named savings target. Name is the unique key; savings
// transactions reference a goal by using its name as their category.
type SavingsGoal struct {
	Name    string          `json:"name"`
	Current decimal.Decimal `json:"current"`
	Target  decimal.Decimal `json:"target"`
}

// UserStats is the derived aggregate over the ledger. It is maintained
// incrementally: only StreakDays is recomputed from the transaction list,
// and Level/LevelTitle are recomputed from XP.
type UserStats struct {
	CurrentBalance  decimal.Decimal `json:"currentBalance"`
	MonthlyExpenses decimal.Decimal `json:"monthlyExpenses"`
	TotalSavings    decimal.Decimal `json:"totalSavings"`
	SavingsGoals    []SavingsGoal   `json:"savingsGoals"`
	StreakDays      int             `json:"streakDays"`
	XP              int             `json:"xp"`
	Level           int             `json:"level"`
	LevelTitle      string          `json:"levelTitle"`
}

// DefaultStats returns the zero-history aggregate for a fresh user.
func DefaultStats() UserStats {
	return UserStats{
		SavingsGoals: []SavingsGoal{},
		Level:        1,
		LevelTitle:   "Novice",
	}
}

// Clone returns a deep copy, so effect application can stay pure.
func (s UserStats) Clone() UserStats {
	out := s
	out.SavingsGoals = make([]SavingsGoal, len(s.SavingsGoals))
	copy(out.SavingsGoals, s.SavingsGoals)
	return out
}

// Goal returns a pointer to the named goal, or nil if absent.
func (s UserStats) Goal(name string) *SavingsGoal {
	for i := range s.SavingsGoals {
		if s.SavingsGoals[i].Name == name {
			return &s.SavingsGoals[i]
		}
	}
	return nil
}
