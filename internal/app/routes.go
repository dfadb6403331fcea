package app

import (
	"github.com/gorilla/mux"

	"github.com/DarkMythic1995/personal-finance-tracking-app/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Transactions
	r.HandleFunc("/api/transaction", deps.TransactionHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/transaction", deps.TransactionHandler.Register).Methods("POST")
	r.HandleFunc("/api/transaction/{id}", deps.TransactionHandler.Update).Methods("PUT")
	r.HandleFunc("/api/transaction/{id}", deps.TransactionHandler.Delete).Methods("DELETE")

	// Budgets
	r.HandleFunc("/api/budget", deps.BudgetHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/budget", deps.BudgetHandler.Register).Methods("POST")
	r.HandleFunc("/api/budget/{id}", deps.BudgetHandler.Update).Methods("PUT")
	r.HandleFunc("/api/budget/{id}", deps.BudgetHandler.Delete).Methods("DELETE")

	// Reports
	r.HandleFunc("/api/report/summary", deps.ReportHandler.GetSummary).Methods("GET")
	r.HandleFunc("/api/report/charts", deps.ReportHandler.GetCharts).
		Queries("width", "{width}", "height", "{height}").Methods("GET")

	// Exchange rates
	r.HandleFunc("/api/exchange/rate", deps.ExchangeHandler.GetRate).
		Queries("from", "{from}", "to", "{to}").Methods("GET")
}
