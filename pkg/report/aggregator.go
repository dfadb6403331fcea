package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/DarkMythic1995/personal-finance-tracking-app/pkg/transaction"
)

// Aggregate reduces a transaction snapshot into per-category totals for the
// reference month and a trailing monthly series. Only expense transactions
// count; income contributes to no spending total.
//
// Every requested category appears in the result, at zero if nothing was
// spent, so a report shows each budgeted category even without transactions.
// The monthly series covers monthsBack calendar months ending at
// referenceMonth inclusive, in chronological order, and is independent of
// the category set.
//
// The reference month is always an explicit argument; this function never
// reads the clock.
func Aggregate(
	transactions []transaction.Transaction,
	referenceMonth time.Time,
	categories []string,
	monthsBack int,
) ([]CategorySpending, []MonthlySpending) {

	byCategory := make(map[string]decimal.Decimal, len(categories))
	for _, category := range categories {
		byCategory[category] = decimal.Zero
	}
	for _, t := range transactions {
		if t.IsIncome || !t.InMonth(referenceMonth) {
			continue
		}
		amount, ok := byCategory[t.Category]
		if !ok {
			continue
		}
		byCategory[t.Category] = amount.Add(t.Amount)
	}

	categorySpendings := make([]CategorySpending, 0, len(categories))
	for _, category := range categories {
		categorySpendings = append(categorySpendings, CategorySpending{
			Category: category,
			Amount:   byCategory[category],
		})
	}

	monthlySpendings := make([]MonthlySpending, 0, monthsBack)
	for offset := monthsBack - 1; offset >= 0; offset-- {
		month := time.Date(referenceMonth.Year(), referenceMonth.Month(), 1, 0, 0, 0, 0, time.UTC).
			AddDate(0, -offset, 0)
		total := decimal.Zero
		for _, t := range transactions {
			if t.IsIncome || !t.InMonth(month) {
				continue
			}
			total = total.Add(t.Amount)
		}
		monthlySpendings = append(monthlySpendings, MonthlySpending{
			Month:  month,
			Amount: total,
		})
	}

	return categorySpendings, monthlySpendings
}
