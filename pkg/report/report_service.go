package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/DarkMythic1995/personal-finance-tracking-app/pkg/budget"
	"github.com/DarkMythic1995/personal-finance-tracking-app/pkg/chart"
	"github.com/DarkMythic1995/personal-finance-tracking-app/pkg/transaction"
)

// defaultMonthsBack is the trailing window of the monthly spending series.
const defaultMonthsBack = 6

type ReportService interface {
	// MonthlyReport computes the full analytics snapshot for the calendar
	// month of referenceMonth.
	MonthlyReport(ctx context.Context, referenceMonth time.Time) (MonthlyReport, error)
	// SpendFor returns the expense total for one category in one calendar
	// month, using the same rules as MonthlyReport.
	SpendFor(ctx context.Context, category string, month time.Time) (decimal.Decimal, error)
}

type ReportServiceImpl struct {
	transactionRepo transaction.TransactionRepo
	budgetRepo      budget.BudgetRepo
}

func NewReportServiceImpl(
	transactionRepo transaction.TransactionRepo,
	budgetRepo budget.BudgetRepo,
) *ReportServiceImpl {
	return &ReportServiceImpl{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
	}
}

func (s *ReportServiceImpl) MonthlyReport(ctx context.Context, referenceMonth time.Time) (MonthlyReport, error) {
	transactions, budgets, err := s.loadSnapshot(ctx)
	if err != nil {
		return MonthlyReport{}, err
	}
	log.Debugf("Computing report for %s over %d transactions and %d budgets",
		referenceMonth.Format("2006-01"), len(transactions), len(budgets))

	categories := budgetedCategories(budgets, referenceMonth)
	categorySpendings, monthlySpendings := Aggregate(transactions, referenceMonth, categories, defaultMonthsBack)

	progress := make([]BudgetProgress, 0, len(categorySpendings))
	for _, spending := range categorySpendings {
		ratio := Progress(budgets, spending.Category, referenceMonth, spending.Amount)
		progress = append(progress, BudgetProgress{
			Category: spending.Category,
			Ratio:    ratio,
			Band:     chart.BandFor(ratio),
		})
	}

	return MonthlyReport{
		ReferenceMonth: budget.NormalizeMonth(referenceMonth),
		Categories:     categorySpendings,
		Monthly:        monthlySpendings,
		Progress:       progress,
	}, nil
}

func (s *ReportServiceImpl) SpendFor(ctx context.Context, category string, month time.Time) (decimal.Decimal, error) {
	transactions, err := s.transactionRepo.GetAll(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load transactions: %w", err)
	}
	categorySpendings, _ := Aggregate(transactions, month, []string{category}, 1)
	return categorySpendings[0].Amount, nil
}

// loadSnapshot fetches both collections before any computation starts, so
// the pure functions below run over a consistent, fully materialized input.
func (s *ReportServiceImpl) loadSnapshot(ctx context.Context) ([]transaction.Transaction, []budget.Budget, error) {
	var transactions []transaction.Transaction
	var budgets []budget.Budget

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = s.transactionRepo.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to load transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		budgets, err = s.budgetRepo.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to load budgets: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return transactions, budgets, nil
}

// budgetedCategories lists the distinct categories budgeted for the month,
// in budget input order.
func budgetedCategories(budgets []budget.Budget, referenceMonth time.Time) []string {
	seen := make(map[string]bool, len(budgets))
	categories := make([]string, 0, len(budgets))
	for _, b := range budgets {
		if !b.ForMonth(referenceMonth) || seen[b.Category] {
			continue
		}
		seen[b.Category] = true
		categories = append(categories, b.Category)
	}
	return categories
}
