package model

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType classifies the effect a transaction has on the ledger.
type TransactionType string

// Supported transaction types.
const (
	TypeExpense TransactionType = "expense"
	TypeIncome  TransactionType = "income"
	TypeSavings TransactionType = "savings"
)

// Valid reports whether the type is one of the supported kinds.
func (t TransactionType) Valid() bool {
	switch t {
	case TypeExpense, TypeIncome, TypeSavings:
		return true
	}
	return false
}

// ParseTransactionType converts user input to a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", ErrInvalidType
	}
	return t, nil
}

// Validation errors returned at the core boundary.
var (
	ErrInvalidType     = errors.New("invalid transaction type")
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrInvalidDate     = errors.New("invalid date")
	ErrEmptyCategory   = errors.New("empty category")
	ErrEmptyName       = errors.New("empty name")
	ErrInvalidTarget   = errors.New("target must be positive")
	ErrInvalidLimit    = errors.New("budget limit must be positive")
	ErrInvalidInterval = errors.New("invalid recurrence interval")
)

// Transaction is a single income, expense, or savings-transfer entry.
// Once applied its effects are immutable except via explicit edit
// (revert and reapply).
type Transaction struct {
	ID       string          `json:"id"`
	Type     TransactionType `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Date     Date            `json:"date"`
	Icon     string          `json:"icon,omitempty"`
	Note     string          `json:"note,omitempty"`
}

// Validate checks a transaction before its effects are applied.
func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	if t.Amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	if !t.Date.Valid() {
		return ErrInvalidDate
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

// NewID generates a fresh unique identifier for ledger entities.
func NewID() string {
	return uuid.NewString()
}
