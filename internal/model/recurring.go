package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Interval is how often a recurring rule fires.
type Interval string

// Supported recurrence intervals.
const (
	IntervalDaily   Interval = "daily"
	IntervalWeekly  Interval = "weekly"
	IntervalMonthly Interval = "monthly"
	IntervalYearly  Interval = "yearly"
)

// Valid reports whether the interval is supported.
func (i Interval) Valid() bool {
	switch i {
	case IntervalDaily, IntervalWeekly, IntervalMonthly, IntervalYearly:
		return true
	}
	return false
}

// ParseInterval converts user input to an Interval.
func ParseInterval(s string) (Interval, error) {
	i := Interval(strings.ToLower(strings.TrimSpace(s)))
	if !i.Valid() {
		return "", ErrInvalidInterval
	}
	return i, nil
}

// Next advances a date by one interval using calendar arithmetic, so
// month and year lengths vary correctly.
func (i Interval) Next(d Date) Date {
	t, err := d.Time()
	if err != nil {
		return d
	}
	switch i {
	case IntervalDaily:
		t = t.AddDate(0, 0, 1)
	case IntervalWeekly:
		t = t.AddDate(0, 0, 7)
	case IntervalMonthly:
		t = t.AddDate(0, 1, 0)
	case IntervalYearly:
		t = t.AddDate(1, 0, 0)
	}
	return DateOf(t)
}

// RecurringTransaction is a template that periodically materializes
// concrete transactions. NextDate advances monotonically; no other field
// is ever mutated after creation.
type RecurringTransaction struct {
	ID        string          `json:"id"`
	Type      TransactionType `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Icon      string          `json:"icon,omitempty"`
	Note      string          `json:"note,omitempty"`
	Interval  Interval        `json:"interval"`
	StartDate Date            `json:"startDate"`
	NextDate  Date            `json:"nextDate"`
}

// Validate checks a rule before it is added.
func (r RecurringTransaction) Validate() error {
	if !r.Type.Valid() {
		return ErrInvalidType
	}
	if r.Amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(r.Category) == "" {
		return ErrEmptyCategory
	}
	if !r.Interval.Valid() {
		return ErrInvalidInterval
	}
	if !r.StartDate.Valid() {
		return ErrInvalidDate
	}
	return nil
}
