package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fandersmf/cash-blotter/entity"
)

func (h *CashBlotterHandler) Recalculate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req entity.RecalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, APIResponse{
			Status:  "error",
			Message: "Invalid request body",
		})
		return
	}

	start, err := entity.ParseDate(req.StartDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, APIResponse{
			Status:  "error",
			Message: fmt.Sprintf("start_date must be in %s format", entity.DateFormat),
		})
		return
	}

	if err := h.Usecase.RecalculateFromDate(r.Context(), start); err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Status:  "success",
		Message: fmt.Sprintf("Cash blotter recalculated from %s", start),
	})
}
