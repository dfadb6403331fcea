package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DarkMythic1995/personal-finance-tracking-app/pkg/budget"
	"github.com/DarkMythic1995/personal-finance-tracking-app/pkg/chart"
	"github.com/DarkMythic1995/personal-finance-tracking-app/pkg/transaction"
)

func setup(t *testing.T) (*ReportServiceImpl, *transaction.StubTransactionRepo, *budget.StubBudgetRepo, func()) {
	transactionRepo := transaction.NewStubTransactionRepo()
	budgetRepo := budget.NewStubBudgetRepo()
	service := NewReportServiceImpl(transactionRepo, budgetRepo)
	return service, transactionRepo, budgetRepo, func() {
		t.Log("Teardown after test")
		transactionRepo.Cleanup()
		budgetRepo.Cleanup()
	}
}

func TestReportServiceImpl_MonthlyReport(t *testing.T) {
	service, transactionRepo, budgetRepo, teardown := setup(t)
	defer teardown()
	ctx := context.Background()

	// given
	january := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, budgetRepo.Store(ctx, budget.Budget{
		ID: "b-1", Category: "Groceries", Amount: decimal.NewFromInt(400), Month: january,
	}))
	require.NoError(t, budgetRepo.Store(ctx, budget.Budget{
		ID: "b-2", Category: "Rent", Amount: decimal.NewFromInt(1000), Month: january,
	}))
	require.NoError(t, transactionRepo.Store(ctx, transaction.Transaction{
		ID: "t-1", Category: "Groceries", Amount: decimal.NewFromInt(150), Date: january.AddDate(0, 0, 9),
	}))
	require.NoError(t, transactionRepo.Store(ctx, transaction.Transaction{
		ID: "t-2", Category: "Rent", Amount: decimal.NewFromInt(950), Date: january.AddDate(0, 0, 1),
	}))
	require.NoError(t, transactionRepo.Store(ctx, transaction.Transaction{
		ID: "t-3", Category: "Salary", Amount: decimal.NewFromInt(3000), Date: january.AddDate(0, 0, 1), IsIncome: true,
	}))

	// when
	report, err := service.MonthlyReport(ctx, january.AddDate(0, 0, 14))

	// then
	require.NoError(t, err)
	assert.Equal(t, january, report.ReferenceMonth)
	require.Len(t, report.Categories, 2)
	assert.True(t, report.Categories[0].Amount.Equal(decimal.NewFromInt(150)))
	assert.True(t, report.Categories[1].Amount.Equal(decimal.NewFromInt(950)))

	require.Len(t, report.Progress, 2)
	assert.Equal(t, 37.5, report.Progress[0].Ratio)
	assert.Equal(t, chart.BandHealthy, report.Progress[0].Band)
	assert.Equal(t, 95.0, report.Progress[1].Ratio)
	assert.Equal(t, chart.BandWarning, report.Progress[1].Band)

	require.Len(t, report.Monthly, 6)
	assert.Equal(t, time.August, report.Monthly[0].Month.Month())
	assert.True(t, report.Monthly[5].Amount.Equal(decimal.NewFromInt(1100)))
}

func TestReportServiceImpl_MonthlyReport_NoData(t *testing.T) {
	service, _, _, teardown := setup(t)
	defer teardown()

	report, err := service.MonthlyReport(context.Background(), time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Empty(t, report.Categories)
	assert.Empty(t, report.Progress)
	assert.Len(t, report.Monthly, 6)
}

func TestReportServiceImpl_SpendFor_MatchesAggregate(t *testing.T) {
	service, transactionRepo, budgetRepo, teardown := setup(t)
	defer teardown()
	ctx := context.Background()

	january := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, budgetRepo.Store(ctx, budget.Budget{
		ID: "b-1", Category: "Groceries", Amount: decimal.NewFromInt(400), Month: january,
	}))
	require.NoError(t, transactionRepo.Store(ctx, transaction.Transaction{
		ID: "t-1", Category: "Groceries", Amount: decimal.NewFromInt(150), Date: january.AddDate(0, 0, 3),
	}))
	require.NoError(t, transactionRepo.Store(ctx, transaction.Transaction{
		ID: "t-2", Category: "Groceries", Amount: decimal.NewFromInt(75), Date: january.AddDate(0, -1, 0),
	}))

	spent, err := service.SpendFor(ctx, "Groceries", january)
	require.NoError(t, err)
	assert.True(t, spent.Equal(decimal.NewFromInt(150)))

	// the same figure drives the report's progress ratio
	report, err := service.MonthlyReport(ctx, january)
	require.NoError(t, err)
	require.Len(t, report.Progress, 1)
	assert.Equal(t, 37.5, report.Progress[0].Ratio)
}
