package cashblotter

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"

	"github.com/fandersmf/cash-blotter/consts"
	"github.com/fandersmf/cash-blotter/entity"
)

// RecalculateFromDate rebuilds the blotter for [start, today] as one atomic
// batch. At most one recalculation runs system-wide; a second call while one
// is in flight fails with ConcurrencyError and is never queued.
func (u *cashBlotterUsecase) RecalculateFromDate(ctx context.Context, start entity.Date) error {
	today := entity.DateOf(u.nowFn())

	if start.IsZero() {
		return &entity.ValidationError{Reason: "start date is required"}
	}
	if start.After(today) {
		return &entity.ValidationError{Reason: "start date must not be in the future"}
	}

	acquired, err := u.locker.TryAcquire(ctx)
	if err != nil {
		return &entity.PersistenceError{Op: "acquire recalculation lock", Err: err}
	}
	if !acquired {
		return &entity.ConcurrencyError{}
	}
	// Release on every exit path. A fresh context so an expired time budget
	// cannot strand the lock.
	defer func() {
		if err := u.locker.Release(context.Background()); err != nil {
			log.Errorf("[CashBlotter] failed to release recalculation lock: %v", err)
		}
	}()

	if u.cfg.RecalcTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.cfg.RecalcTimeout)
		defer cancel()
	}

	runID := uuid.NewString()
	log.Infof("[CashBlotter] run %s: recalculating %s..%s", runID, start, today)

	anchor, err := u.anchorBalance(start)
	if err != nil {
		log.Errorf("[CashBlotter] run %s aborted: %v", runID, err)
		return err
	}

	events, err := u.dao.GetTransactionEventsInRange(start.Time(), today.Time())
	if err != nil {
		log.Errorf("[CashBlotter] run %s aborted: %v", runID, err)
		return &entity.DataSourceError{Op: "query transaction events", Err: err}
	}

	totals, err := AggregateRange(events, start, today, u.cfg.DirectionByType)
	if err != nil {
		log.Errorf("[CashBlotter] run %s aborted: %v", runID, err)
		return err
	}

	if err := ctx.Err(); err != nil {
		log.Errorf("[CashBlotter] run %s aborted before persist: %v", runID, err)
		return &entity.PersistenceError{Op: "recalculation time budget", Err: err}
	}

	entries := FoldBalances(totals, anchor, u.nowFn())

	if err := u.dao.ReplaceBlotterRange(start.Time(), today.Time(), entries); err != nil {
		log.Errorf("[CashBlotter] run %s aborted: %v", runID, err)
		return &entity.PersistenceError{Op: "replace blotter range", Err: err}
	}

	log.Infof("[CashBlotter] run %s committed: %d day(s), %d event(s)", runID, len(entries), len(events))
	return nil
}

// anchorBalance is the running balance carried into the first day of the
// range: the entry immediately before start, or zero when none exists.
func (u *cashBlotterUsecase) anchorBalance(start entity.Date) (decimal.Decimal, error) {
	entry, found, err := u.dao.GetBlotterEntryBefore(start.Time())
	if err != nil {
		return decimal.Zero, &entity.DataSourceError{Op: "read anchor balance", Err: err}
	}
	if !found {
		return decimal.Zero, nil
	}
	return entry.CalculatedBalance, nil
}

// RecalculateFromEarliest rebuilds from the earliest recorded transaction
// event, falling back to a fixed lookback window when no events exist yet.
// This is the scheduled-trigger entry point.
func (u *cashBlotterUsecase) RecalculateFromEarliest(ctx context.Context) error {
	earliest, found, err := u.dao.GetEarliestEventDate()
	if err != nil {
		return &entity.DataSourceError{Op: "find earliest event date", Err: err}
	}

	start := entity.DateOf(u.nowFn()).Add(-consts.DefaultLookbackDays)
	if found {
		start = entity.DateOf(earliest)
	}

	return u.RecalculateFromDate(ctx, start)
}

// ProcessDailyBlotter recalculates from the given date (today when zero)
// through today. Meant to be called once per day to keep cash positions
// current.
func (u *cashBlotterUsecase) ProcessDailyBlotter(ctx context.Context, date entity.Date) error {
	if date.IsZero() {
		date = entity.DateOf(u.nowFn())
	}
	return u.RecalculateFromDate(ctx, date)
}
