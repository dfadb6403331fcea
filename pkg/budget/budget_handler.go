package budget

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/DarkMythic1995/personal-finance-tracking-app/internal/rest"
)

type BudgetDTO struct {
	ID       string          `json:"id"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Month    string          `json:"month"`
}

type BudgetHandler struct {
	budgetService BudgetService
}

func NewBudgetHandler(budgetService BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService}
}

func (handler *BudgetHandler) Register(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new budget")
	w.Header().Set("Content-Type", "application/json")

	var budgetDTO BudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&budgetDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	budget, err := DTOToBudget(budgetDTO)
	if err != nil {
		writeBudgetValidationError(w, err)
		return
	}

	createdBudget, err := handler.budgetService.Create(r.Context(), budget)
	if err != nil {
		if errors.Is(err, ErrMissingCategory) {
			writeBudgetValidationError(w, err)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(BudgetToDTO(createdBudget)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *BudgetHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	budgets, err := handler.budgetService.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	budgetsDTO := make([]BudgetDTO, 0, len(budgets))
	for _, budget := range budgets {
		budgetsDTO = append(budgetsDTO, BudgetToDTO(budget))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(budgetsDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *BudgetHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	budgetId := vars["id"]

	var budgetDTO BudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&budgetDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if budgetDTO.ID == "" || budgetDTO.ID != budgetId {
		http.Error(w, "Invalid budget id in request body", http.StatusBadRequest)
		return
	}

	budget, err := DTOToBudget(budgetDTO)
	if err != nil {
		writeBudgetValidationError(w, err)
		return
	}
	ok, err := handler.budgetService.Update(r.Context(), budget)
	if err != nil {
		if errors.Is(err, ErrMissingCategory) {
			writeBudgetValidationError(w, err)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Budget not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(budgetDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *BudgetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	budgetId := vars["id"]

	ok, err := handler.budgetService.Delete(r.Context(), budgetId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Budget not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func BudgetToDTO(budget Budget) BudgetDTO {
	return BudgetDTO{
		ID:       budget.ID,
		Category: budget.Category,
		Amount:   budget.Amount,
		Month:    budget.Month.Format("2006-01"),
	}
}

func DTOToBudget(dto BudgetDTO) (Budget, error) {
	month, err := time.Parse("2006-01", dto.Month)
	if err != nil {
		return Budget{}, errors.New("month must be in YYYY-MM format")
	}
	return Budget{
		ID:       dto.ID,
		Category: dto.Category,
		Amount:   dto.Amount,
		Month:    NormalizeMonth(month),
	}, nil
}

func writeBudgetValidationError(w http.ResponseWriter, err error) {
	w.WriteHeader(http.StatusBadRequest)
	if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   "Invalid budget",
		Details: err.Error(),
	}); encodeErr != nil {
		http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
	}
}
