package cashblotter

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fandersmf/cash-blotter/entity"
	"github.com/fandersmf/cash-blotter/infra/db/model"
)

// AggregateRange groups transaction events into per-day inflow/outflow
// totals covering every date of [start, end], in order and with no gaps.
// Days without events carry (0, 0). Pure: the same event snapshot always
// yields the same totals.
func AggregateRange(
	events []model.TransactionEvent,
	start, end entity.Date,
	directions map[string]entity.FlowDirection,
) ([]entity.DailyTotals, error) {
	if end.Before(start) {
		return nil, &entity.ValidationError{Reason: fmt.Sprintf("end date %s is before start date %s", end, start)}
	}

	days := start.DaysUntil(end) + 1
	totals := make([]entity.DailyTotals, days)
	for i := 0; i < days; i++ {
		totals[i] = entity.DailyTotals{
			Date:         start.Add(i),
			TotalInflow:  decimal.Zero,
			TotalOutflow: decimal.Zero,
		}
	}

	for _, event := range events {
		day := entity.DateOf(event.OccurredOn)
		if day.Before(start) || day.After(end) {
			continue
		}

		direction, ok := directions[event.EventType]
		if !ok {
			return nil, &entity.ValidationError{Reason: fmt.Sprintf("event %s has unmapped type %q", event.ID, event.EventType)}
		}

		i := start.DaysUntil(day)
		switch direction {
		case entity.FlowInflow:
			totals[i].TotalInflow = totals[i].TotalInflow.Add(event.Amount)
		case entity.FlowOutflow:
			totals[i].TotalOutflow = totals[i].TotalOutflow.Add(event.Amount)
		}
	}

	return totals, nil
}
