package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/gommon/log"

	"github.com/fandersmf/cash-blotter/entity"
	usecase "github.com/fandersmf/cash-blotter/usecase/cashblotter"
)

type CashBlotterHandler struct {
	Usecase usecase.CashBlotterUsecase
}

func NewCashBlotterHandler(uc usecase.CashBlotterUsecase) *CashBlotterHandler {
	return &CashBlotterHandler{Usecase: uc}
}

type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, resp APIResponse) {
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(resp)
}

// writeUsecaseError maps the error taxonomy to HTTP statuses. Full detail is
// logged; callers get a concise reason only.
func writeUsecaseError(w http.ResponseWriter, err error) {
	var validationErr *entity.ValidationError
	var concurrencyErr *entity.ConcurrencyError
	var dataSourceErr *entity.DataSourceError

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, APIResponse{
			Status:  "error",
			Message: validationErr.Reason,
		})
	case errors.As(err, &concurrencyErr):
		writeJSON(w, http.StatusConflict, APIResponse{
			Status:  "error",
			Message: "A recalculation is already in progress",
		})
	case errors.As(err, &dataSourceErr):
		log.Errorf("[Handler] data source failure: %v", err)
		writeJSON(w, http.StatusBadGateway, APIResponse{
			Status:  "error",
			Message: "Failed to read cash blotter data",
		})
	default:
		log.Errorf("[Handler] internal failure: %v", err)
		writeJSON(w, http.StatusInternalServerError, APIResponse{
			Status:  "error",
			Message: "Internal error",
		})
	}
}
