package transaction

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidAmount       = errors.New("transaction amount must be greater than zero")
	ErrMissingCategory     = errors.New("transaction category must not be empty")
)

type Transaction struct {
	ID       string
	Category string
	Amount   decimal.Decimal
	Date     time.Time
	IsIncome bool
	Notes    string
}

// Validate checks the fields a user can get wrong on entry.
func (t Transaction) Validate() error {
	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if t.Category == "" {
		return ErrMissingCategory
	}
	return nil
}

// InMonth reports whether the transaction date falls within the calendar
// month of the given reference date.
func (t Transaction) InMonth(month time.Time) bool {
	return t.Date.Year() == month.Year() && t.Date.Month() == month.Month()
}
