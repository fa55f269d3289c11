package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/fandersmf/cash-blotter/consts"
	"github.com/fandersmf/cash-blotter/entity"
)

func (h *CashBlotterHandler) GetCurrentBalance(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	balance, err := h.Usecase.GetCurrentBalance(r.Context())
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"current_balance": balance,
		},
	})
}

func (h *CashBlotterHandler) GetBlotterRange(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	start, end, ok := parseRangeParams(w, r)
	if !ok {
		return
	}

	entries, err := h.Usecase.GetBlotterRange(r.Context(), start, end)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Status: "success",
		Data:   entries,
	})
}

func (h *CashBlotterHandler) GetCashFlowSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	start, end, ok := parseRangeParams(w, r)
	if !ok {
		return
	}

	summary, err := h.Usecase.GetCashFlowSummary(r.Context(), start, end)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Status: "success",
		Data:   summary,
	})
}

func (h *CashBlotterHandler) GetCashAlerts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	alerts, err := h.Usecase.GetCashAlerts(r.Context())
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	if alerts == nil {
		alerts = []entity.CashAlert{}
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Status: "success",
		Data:   alerts,
	})
}

func (h *CashBlotterHandler) GetDailyCashFlow(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	days, ok := parseCountParam(w, r, "days", consts.DefaultDailyCashFlowDays)
	if !ok {
		return
	}

	points, err := h.Usecase.GetDailyCashFlow(r.Context(), days)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Status: "success",
		Data:   points,
	})
}

func (h *CashBlotterHandler) GetMonthlyCashFlow(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	months, ok := parseCountParam(w, r, "months", consts.DefaultMonthlyCashFlowCount)
	if !ok {
		return
	}

	points, err := h.Usecase.GetMonthlyCashFlow(r.Context(), months)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Status: "success",
		Data:   points,
	})
}

func parseRangeParams(w http.ResponseWriter, r *http.Request) (entity.Date, entity.Date, bool) {
	start, err := entity.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, APIResponse{
			Status:  "error",
			Message: fmt.Sprintf("start_date must be in %s format", entity.DateFormat),
		})
		return entity.Date{}, entity.Date{}, false
	}

	end, err := entity.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, APIResponse{
			Status:  "error",
			Message: fmt.Sprintf("end_date must be in %s format", entity.DateFormat),
		})
		return entity.Date{}, entity.Date{}, false
	}

	return start, end, true
}

func parseCountParam(w http.ResponseWriter, r *http.Request, name string, fallback int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, true
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		writeJSON(w, http.StatusBadRequest, APIResponse{
			Status:  "error",
			Message: fmt.Sprintf("%s must be a positive integer", name),
		})
		return 0, false
	}
	return value, true
}
