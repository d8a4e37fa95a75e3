package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Capsule is a named spending-limit bucket. Spent moves only as a side
// effect of expense transactions whose category matches the capsule name;
// matching is re-evaluated per transaction, never cached.
type Capsule struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
	Spent decimal.Decimal `json:"spent"`
	Icon  string          `json:"icon,omitempty"`
}

// Matches reports whether an expense category debits this capsule:
// case-insensitive equality, or the category containing the capsule name.
func (c Capsule) Matches(category string) bool {
	name := strings.ToLower(c.Name)
	cat := strings.ToLower(category)
	return cat == name || strings.Contains(cat, name)
}

// Validate checks a capsule before it is added or edited.
func (c Capsule) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if c.Total.Sign() <= 0 {
		return ErrInvalidLimit
	}
	if c.Spent.Sign() < 0 {
		return ErrInvalidAmount
	}
	return nil
}
