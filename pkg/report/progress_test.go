package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/DarkMythic1995/personal-finance-tracking-app/pkg/budget"
)

func TestProgress(t *testing.T) {
	january := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	groceriesBudget := budget.Budget{
		ID:       "b-1",
		Category: "Groceries",
		Amount:   decimal.NewFromInt(400),
		Month:    budget.NormalizeMonth(january),
	}

	tests := []struct {
		name     string
		budgets  []budget.Budget
		category string
		month    time.Time
		spent    decimal.Decimal
		want     float64
	}{
		{
			name:     "Partial spend yields fractional ratio",
			budgets:  []budget.Budget{groceriesBudget},
			category: "Groceries",
			month:    january,
			spent:    decimal.NewFromInt(150),
			want:     37.5,
		},
		{
			name:     "Nothing spent yields zero",
			budgets:  []budget.Budget{groceriesBudget},
			category: "Groceries",
			month:    january,
			spent:    decimal.Zero,
			want:     0,
		},
		{
			name:     "Overspend is capped at 100",
			budgets:  []budget.Budget{groceriesBudget},
			category: "Groceries",
			month:    january,
			spent:    decimal.NewFromInt(100000),
			want:     100,
		},
		{
			name:     "Spend exactly at budget",
			budgets:  []budget.Budget{groceriesBudget},
			category: "Groceries",
			month:    january,
			spent:    decimal.NewFromInt(400),
			want:     100,
		},
		{
			name: "Zero-amount budget is not a division error",
			budgets: []budget.Budget{{
				ID:       "b-2",
				Category: "Groceries",
				Amount:   decimal.Zero,
				Month:    budget.NormalizeMonth(january),
			}},
			category: "Groceries",
			month:    january,
			spent:    decimal.NewFromInt(150),
			want:     0,
		},
		{
			name:     "No budget for category",
			budgets:  []budget.Budget{groceriesBudget},
			category: "Travel",
			month:    january,
			spent:    decimal.NewFromInt(150),
			want:     0,
		},
		{
			name:     "No budget for month",
			budgets:  []budget.Budget{groceriesBudget},
			category: "Groceries",
			month:    january.AddDate(0, 1, 0),
			spent:    decimal.NewFromInt(150),
			want:     0,
		},
		{
			name: "Duplicate budgets: first in input order wins",
			budgets: []budget.Budget{
				groceriesBudget,
				{
					ID:       "b-3",
					Category: "Groceries",
					Amount:   decimal.NewFromInt(200),
					Month:    budget.NormalizeMonth(january),
				},
			},
			category: "Groceries",
			month:    january,
			spent:    decimal.NewFromInt(100),
			want:     25,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.budgets, tt.category, tt.month, tt.spent); got != tt.want {
				t.Errorf("Progress() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProgress_MonotonicInSpend(t *testing.T) {
	january := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	budgets := []budget.Budget{{
		ID:       "b-1",
		Category: "Groceries",
		Amount:   decimal.NewFromInt(300),
		Month:    january,
	}}

	previous := -1.0
	for spent := int64(0); spent <= 600; spent += 50 {
		ratio := Progress(budgets, "Groceries", january, decimal.NewFromInt(spent))
		if ratio < previous {
			t.Fatalf("Progress decreased from %v to %v at spent=%d", previous, ratio, spent)
		}
		if ratio < 0 || ratio > 100 {
			t.Fatalf("Progress out of range at spent=%d: %v", spent, ratio)
		}
		previous = ratio
	}
}
