package app

import (
	"database/sql"
	"time"

	"github.com/DarkMythic1995/personal-finance-tracking-app/internal/config"
	"github.com/DarkMythic1995/personal-finance-tracking-app/internal/utils"
	"github.com/DarkMythic1995/personal-finance-tracking-app/pkg/budget"
	"github.com/DarkMythic1995/personal-finance-tracking-app/pkg/exchange"
	"github.com/DarkMythic1995/personal-finance-tracking-app/pkg/report"
	"github.com/DarkMythic1995/personal-finance-tracking-app/pkg/transaction"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	TransactionRepo    transaction.TransactionRepo
	TransactionService *transaction.TransactionServiceImpl
	TransactionHandler *transaction.TransactionHandler

	BudgetRepo    budget.BudgetRepo
	BudgetService *budget.BudgetServiceImpl
	BudgetHandler *budget.BudgetHandler

	ReportService     *report.ReportServiceImpl
	CsvReportRenderer *report.CsvReportRendererImpl
	ReportHandler     *report.ReportHandler

	ExchangeClient  exchange.RateClient
	ExchangeService *exchange.CachedRateService
	ExchangeHandler *exchange.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}

	deps.TransactionRepo = transaction.NewTransactionRepo(db)
	deps.TransactionService = transaction.NewTransactionServiceImpl(deps.TransactionRepo)
	deps.TransactionHandler = transaction.NewTransactionHandler(deps.TransactionService)

	deps.BudgetRepo = budget.NewBudgetRepo(db)
	deps.BudgetService = budget.NewBudgetServiceImpl(deps.BudgetRepo)
	deps.BudgetHandler = budget.NewBudgetHandler(deps.BudgetService)

	deps.ReportService = report.NewReportServiceImpl(deps.TransactionRepo, deps.BudgetRepo)
	deps.CsvReportRenderer = report.NewCsvReportRenderer()
	deps.ReportHandler = report.NewReportHandler(deps.ReportService, deps.CsvReportRenderer, deps.Clock)

	deps.ExchangeClient = exchange.NewHttpRateClient(cfg.Exchange.BaseUrl)
	deps.ExchangeService = exchange.NewCachedRateService(deps.ExchangeClient, time.Duration(cfg.Exchange.CacheMinutes)*time.Minute)
	deps.ExchangeHandler = exchange.NewHandler(deps.ExchangeService)

	return deps
}
