package cashblotter

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fandersmf/cash-blotter/entity"
)

// EvaluateAlerts derives the cash-position alert for a balance. The bands
// are mutually exclusive, so at most one alert is produced: negative balance
// is critical, below the low threshold is a warning, anything else is fine.
func EvaluateAlerts(balance, lowThreshold decimal.Decimal) []entity.CashAlert {
	if balance.IsNegative() {
		return []entity.CashAlert{{
			Type:     entity.AlertTypeNegativeBalance,
			Severity: entity.AlertSeverityCritical,
			Message:  fmt.Sprintf("Cash balance is negative (%s)", balance.StringFixed(2)),
		}}
	}

	if balance.LessThan(lowThreshold) {
		return []entity.CashAlert{{
			Type:     entity.AlertTypeLowBalance,
			Severity: entity.AlertSeverityWarning,
			Message: fmt.Sprintf("Current cash balance (%s) is below threshold (%s)",
				balance.StringFixed(2), lowThreshold.StringFixed(2)),
		}}
	}

	return nil
}

func (u *cashBlotterUsecase) GetCashAlerts(ctx context.Context) ([]entity.CashAlert, error) {
	balance, err := u.GetCurrentBalance(ctx)
	if err != nil {
		return nil, err
	}
	return EvaluateAlerts(balance, u.cfg.LowThreshold), nil
}
