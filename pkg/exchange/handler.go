package exchange

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/DarkMythic1995/personal-finance-tracking-app/internal/rest"
)

type RateDTO struct {
	From string          `json:"from"`
	To   string          `json:"to"`
	Rate decimal.Decimal `json:"rate"`
}

type Handler struct {
	rateService RateService
}

func NewHandler(rateService RateService) *Handler {
	return &Handler{rateService}
}

func (handler *Handler) GetRate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		w.WriteHeader(http.StatusBadRequest)
		if err := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Missing currency code",
			Details: "both from and to query parameters are required",
		}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	rate, err := handler.rateService.Rate(r.Context(), from, to)
	if err != nil {
		if errors.Is(err, ErrRateUnavailable) {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(RateDTO{From: from, To: to, Rate: rate}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
