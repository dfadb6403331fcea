package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/DarkMythic1995/personal-finance-tracking-app/pkg/budget"
)

var oneHundred = decimal.NewFromInt(100)

// Progress returns the budget progress ratio (0-100 percent) for a category
// in the reference month. The spent amount is supplied by the caller,
// typically from Aggregate, so this function needs no transaction access.
//
// A missing budget and a zero-amount budget both yield 0: neither is an
// error, there is simply no progress to report. The ratio is capped at 100;
// how far a budget was overspent is not expressed here.
//
// When duplicate budgets exist for the same category and month, the first
// one in input order wins.
func Progress(
	budgets []budget.Budget,
	category string,
	referenceMonth time.Time,
	spentForCategory decimal.Decimal,
) float64 {

	for _, b := range budgets {
		if b.Category != category || !b.ForMonth(referenceMonth) {
			continue
		}
		if b.Amount.IsZero() {
			return 0
		}
		ratio := spentForCategory.Div(b.Amount).Mul(oneHundred)
		if ratio.GreaterThan(oneHundred) {
			return 100
		}
		result, _ := ratio.Float64()
		return result
	}
	return 0
}
