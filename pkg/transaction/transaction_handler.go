package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/DarkMythic1995/personal-finance-tracking-app/internal/rest"
	"github.com/DarkMythic1995/personal-finance-tracking-app/pkg/chart"
)

type TransactionDTO struct {
	ID       string          `json:"id"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date"`
	IsIncome bool            `json:"isIncome"`
	Notes    string          `json:"notes,omitempty"`
	Color    chart.Color     `json:"color"`
}

type TransactionHandler struct {
	transactionService TransactionService
}

func NewTransactionHandler(transactionService TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService}
}

func (handler *TransactionHandler) Register(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new transaction")
	w.Header().Set("Content-Type", "application/json")

	var transactionDTO TransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&transactionDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	transaction, err := DTOToTransaction(transactionDTO)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	createdTransaction, err := handler.transactionService.Create(r.Context(), transaction)
	if err != nil {
		if errors.Is(err, ErrInvalidAmount) || errors.Is(err, ErrMissingCategory) {
			writeValidationError(w, err)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(TransactionToDTO(createdTransaction)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *TransactionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	transactions, err := handler.transactionService.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	transactionsDTO := make([]TransactionDTO, 0, len(transactions))
	for _, transaction := range transactions {
		transactionsDTO = append(transactionsDTO, TransactionToDTO(transaction))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(transactionsDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	transactionId := vars["id"]

	var transactionDTO TransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&transactionDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if transactionDTO.ID == "" || transactionDTO.ID != transactionId {
		http.Error(w, "Invalid transaction id in request body", http.StatusBadRequest)
		return
	}

	transaction, err := DTOToTransaction(transactionDTO)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	ok, err := handler.transactionService.Update(r.Context(), transaction)
	if err != nil {
		if errors.Is(err, ErrInvalidAmount) || errors.Is(err, ErrMissingCategory) {
			writeValidationError(w, err)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Transaction not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(transactionDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	transactionId := vars["id"]

	ok, err := handler.transactionService.Delete(r.Context(), transactionId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Transaction not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func TransactionToDTO(transaction Transaction) TransactionDTO {
	return TransactionDTO{
		ID:       transaction.ID,
		Category: transaction.Category,
		Amount:   transaction.Amount,
		Date:     transaction.Date.Format("2006-01-02"),
		IsIncome: transaction.IsIncome,
		Notes:    transaction.Notes,
		Color:    chart.IncomeColor(transaction.IsIncome),
	}
}

func DTOToTransaction(dto TransactionDTO) (Transaction, error) {
	date, err := time.Parse("2006-01-02", dto.Date)
	if err != nil {
		return Transaction{}, errors.New("date must be in YYYY-MM-DD format")
	}
	return Transaction{
		ID:       dto.ID,
		Category: dto.Category,
		Amount:   dto.Amount,
		Date:     date,
		IsIncome: dto.IsIncome,
		Notes:    dto.Notes,
	}, nil
}

func writeValidationError(w http.ResponseWriter, err error) {
	w.WriteHeader(http.StatusBadRequest)
	if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   "Invalid transaction",
		Details: err.Error(),
	}); encodeErr != nil {
		http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
	}
}
