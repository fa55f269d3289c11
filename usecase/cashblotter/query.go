package cashblotter

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fandersmf/cash-blotter/entity"
	"github.com/fandersmf/cash-blotter/infra/db/model"
)

// GetCurrentBalance returns the running balance of the most recent blotter
// entry, or zero when the blotter is empty.
func (u *cashBlotterUsecase) GetCurrentBalance(ctx context.Context) (decimal.Decimal, error) {
	var entry model.CashBlotterEntry
	var found bool

	err := u.withReadRetry(ctx, "read latest blotter entry", func() error {
		var err error
		entry, found, err = u.dao.GetLatestBlotterEntry()
		return err
	})
	if err != nil {
		return decimal.Zero, &entity.DataSourceError{Op: "read latest blotter entry", Err: err}
	}
	if !found {
		return decimal.Zero, nil
	}
	return entry.CalculatedBalance, nil
}

// GetBlotterRange returns the ordered blotter rows in [start, end]. Days
// outside what has been recalculated are simply absent; that is not an error.
func (u *cashBlotterUsecase) GetBlotterRange(ctx context.Context, start, end entity.Date) ([]model.CashBlotterEntry, error) {
	if start.IsZero() || end.IsZero() {
		return nil, &entity.ValidationError{Reason: "start and end dates are required"}
	}
	if end.Before(start) {
		return nil, &entity.ValidationError{Reason: fmt.Sprintf("end date %s is before start date %s", end, start)}
	}

	var entries []model.CashBlotterEntry
	err := u.withReadRetry(ctx, "read blotter range", func() error {
		var err error
		entries, err = u.dao.GetBlotterRange(start.Time(), end.Time())
		return err
	})
	if err != nil {
		return nil, &entity.DataSourceError{Op: "read blotter range", Err: err}
	}
	return entries, nil
}

// GetCashFlowSummary sums the blotter rows of [start, end]. By construction
// it equals the component-wise sum of GetBlotterRange over the same range.
func (u *cashBlotterUsecase) GetCashFlowSummary(ctx context.Context, start, end entity.Date) (entity.CashFlowSummary, error) {
	entries, err := u.GetBlotterRange(ctx, start, end)
	if err != nil {
		return entity.CashFlowSummary{}, err
	}
	return summarize(entries), nil
}

func summarize(entries []model.CashBlotterEntry) entity.CashFlowSummary {
	summary := entity.CashFlowSummary{
		TotalInflow:  decimal.Zero,
		TotalOutflow: decimal.Zero,
		NetFlow:      decimal.Zero,
	}
	for _, entry := range entries {
		summary.TotalInflow = summary.TotalInflow.Add(entry.TotalInflow)
		summary.TotalOutflow = summary.TotalOutflow.Add(entry.TotalOutflow)
	}
	summary.NetFlow = summary.TotalInflow.Sub(summary.TotalOutflow)
	return summary
}

// GetDailyCashFlow returns the charting series for the trailing window.
func (u *cashBlotterUsecase) GetDailyCashFlow(ctx context.Context, days int) ([]entity.DailyCashFlowPoint, error) {
	if days < 1 {
		return nil, &entity.ValidationError{Reason: "days must be at least 1"}
	}

	end := entity.DateOf(u.nowFn())
	start := end.Add(-days)

	entries, err := u.GetBlotterRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	points := make([]entity.DailyCashFlowPoint, 0, len(entries))
	for _, entry := range entries {
		points = append(points, entity.DailyCashFlowPoint{
			Date:    entity.DateOf(entry.BlotterDate),
			Inflow:  entry.TotalInflow,
			Outflow: entry.TotalOutflow,
			Balance: entry.CalculatedBalance,
		})
	}
	return points, nil
}

// GetMonthlyCashFlow returns month-bucketed summaries for the trailing
// months, oldest first.
func (u *cashBlotterUsecase) GetMonthlyCashFlow(ctx context.Context, months int) ([]entity.MonthlyCashFlowPoint, error) {
	if months < 1 {
		return nil, &entity.ValidationError{Reason: "months must be at least 1"}
	}

	now := u.nowFn()
	points := make([]entity.MonthlyCashFlowPoint, 0, months)

	for i := months - 1; i >= 0; i-- {
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		last := first.AddDate(0, 1, -1)

		summary, err := u.GetCashFlowSummary(ctx, entity.DateOf(first), entity.DateOf(last))
		if err != nil {
			return nil, err
		}

		points = append(points, entity.MonthlyCashFlowPoint{
			Month:   first.Format("Jan 2006"),
			Inflow:  summary.TotalInflow,
			Outflow: summary.TotalOutflow,
			NetFlow: summary.NetFlow,
		})
	}

	return points, nil
}
