package budget

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrBudgetNotFound  = errors.New("budget not found")
	ErrMissingCategory = errors.New("budget category must not be empty")
)

type Budget struct {
	ID       string
	Category string
	// Amount is the spending limit for the month. Zero means the budget
	// exists but has not been configured yet.
	Amount decimal.Decimal
	// Month is normalized to midnight UTC on the first day of the month.
	Month time.Time
}

// ForMonth reports whether the budget covers the calendar month of the
// given reference date.
func (b Budget) ForMonth(month time.Time) bool {
	return b.Month.Year() == month.Year() && b.Month.Month() == month.Month()
}

// NormalizeMonth truncates a date to the first day of its month in UTC.
func NormalizeMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}
