package entity

import (
	"github.com/shopspring/decimal"
)

// Transaction event types that affect the cash position.
const (
	EventTypePayment      = "PAYMENT"
	EventTypeDisbursement = "DISBURSEMENT"
	EventTypeAdjustment   = "ADJUSTMENT"
)

// FlowDirection classifies an event type as cash coming in or going out.
type FlowDirection string

const (
	FlowInflow  FlowDirection = "inflow"
	FlowOutflow FlowDirection = "outflow"
)

// DailyTotals is one day's aggregated cash movement, before balances are
// folded in.
type DailyTotals struct {
	Date         Date            `json:"date"`
	TotalInflow  decimal.Decimal `json:"total_inflow"`
	TotalOutflow decimal.Decimal `json:"total_outflow"`
}

// CashFlowSummary is the aggregate over a blotter date range.
type CashFlowSummary struct {
	TotalInflow  decimal.Decimal `json:"total_inflow"`
	TotalOutflow decimal.Decimal `json:"total_outflow"`
	NetFlow      decimal.Decimal `json:"net_flow"`
}

// Cash alert severities and types.
const (
	AlertSeverityCritical = "critical"
	AlertSeverityWarning  = "warning"

	AlertTypeNegativeBalance = "negative_balance"
	AlertTypeLowBalance      = "low_balance"
)

// CashAlert is a computed cash-position warning. Never persisted.
type CashAlert struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// DailyCashFlowPoint is one day of the charting series.
type DailyCashFlowPoint struct {
	Date    Date            `json:"date"`
	Inflow  decimal.Decimal `json:"inflow"`
	Outflow decimal.Decimal `json:"outflow"`
	Balance decimal.Decimal `json:"balance"`
}

// MonthlyCashFlowPoint is one month bucket of the cash-flow report.
type MonthlyCashFlowPoint struct {
	Month   string          `json:"month"`
	Inflow  decimal.Decimal `json:"inflow"`
	Outflow decimal.Decimal `json:"outflow"`
	NetFlow decimal.Decimal `json:"net_flow"`
}

// RecalculateRequest is the payload for the recalculation endpoint.
type RecalculateRequest struct {
	StartDate string `json:"start_date"`
}
