package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/DarkMythic1995/personal-finance-tracking-app/pkg/chart"
)

// CategorySpending is the expense total for one category within the
// reference month. Recomputed on every report request, never persisted.
type CategorySpending struct {
	Category string
	Amount   decimal.Decimal
}

// MonthlySpending is the expense total across all categories for one
// calendar month of the trailing window.
type MonthlySpending struct {
	Month  time.Time
	Amount decimal.Decimal
}

// BudgetProgress pairs a category with its bounded progress ratio
// (0-100 percent) and the severity band derived from it.
type BudgetProgress struct {
	Category string
	Ratio    float64
	Band     chart.Band
}

// MonthlyReport is the full analytics snapshot for one reference month.
// It is a plain value: callers own it and diff it against previous
// snapshots themselves.
type MonthlyReport struct {
	ReferenceMonth time.Time
	Categories     []CategorySpending
	Monthly        []MonthlySpending
	Progress       []BudgetProgress
}
