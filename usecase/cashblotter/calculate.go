package cashblotter

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fandersmf/cash-blotter/entity"
	"github.com/fandersmf/cash-blotter/infra/db/model"
)

// FoldBalances turns ordered daily totals into blotter rows by a left fold:
// balance[i] = balance[i-1] + inflow[i] - outflow[i], seeded with the anchor
// balance carried in from the day before the first total.
func FoldBalances(totals []entity.DailyTotals, anchor decimal.Decimal, now time.Time) []model.CashBlotterEntry {
	entries := make([]model.CashBlotterEntry, 0, len(totals))

	balance := anchor
	for _, day := range totals {
		balance = balance.Add(day.TotalInflow).Sub(day.TotalOutflow)
		entries = append(entries, model.CashBlotterEntry{
			BlotterDate:       day.Date.Time(),
			TotalInflow:       day.TotalInflow,
			TotalOutflow:      day.TotalOutflow,
			CalculatedBalance: balance,
			CreatedAt:         now,
			UpdatedAt:         now,
		})
	}

	return entries
}
