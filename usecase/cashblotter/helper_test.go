package cashblotter

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fandersmf/cash-blotter/config"
	"github.com/fandersmf/cash-blotter/entity"
	"github.com/fandersmf/cash-blotter/infra/db/model"
)

// fakeDao is an in-memory DaoMethod with switchable failures.
type fakeDao struct {
	mu      sync.Mutex
	events  []model.TransactionEvent
	entries []model.CashBlotterEntry

	failReplace     bool
	failLatestTimes int
	failEventsTimes int
}

func (f *fakeDao) GetTransactionEventsInRange(start, end time.Time) ([]model.TransactionEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failEventsTimes > 0 {
		f.failEventsTimes--
		return nil, errors.New("transaction source unavailable")
	}
	var out []model.TransactionEvent
	for _, ev := range f.events {
		if !ev.OccurredOn.Before(start) && !ev.OccurredOn.After(end) {
			out = append(out, ev)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OccurredOn.Before(out[j].OccurredOn) })
	return out, nil
}

func (f *fakeDao) GetEarliestEventDate() (time.Time, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.events) == 0 {
		return time.Time{}, false, nil
	}
	earliest := f.events[0].OccurredOn
	for _, ev := range f.events[1:] {
		if ev.OccurredOn.Before(earliest) {
			earliest = ev.OccurredOn
		}
	}
	return earliest, true, nil
}

func (f *fakeDao) GetBlotterRange(start, end time.Time) ([]model.CashBlotterEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.CashBlotterEntry
	for _, e := range f.entries {
		if !e.BlotterDate.Before(start) && !e.BlotterDate.After(end) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BlotterDate.Before(out[j].BlotterDate) })
	return out, nil
}

func (f *fakeDao) GetLatestBlotterEntry() (model.CashBlotterEntry, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failLatestTimes > 0 {
		f.failLatestTimes--
		return model.CashBlotterEntry{}, false, errors.New("blotter store unavailable")
	}
	if len(f.entries) == 0 {
		return model.CashBlotterEntry{}, false, nil
	}
	latest := f.entries[0]
	for _, e := range f.entries[1:] {
		if e.BlotterDate.After(latest.BlotterDate) {
			latest = e
		}
	}
	return latest, true, nil
}

func (f *fakeDao) GetBlotterEntryBefore(date time.Time) (model.CashBlotterEntry, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var best model.CashBlotterEntry
	found := false
	for _, e := range f.entries {
		if e.BlotterDate.Before(date) && (!found || e.BlotterDate.After(best.BlotterDate)) {
			best = e
			found = true
		}
	}
	return best, found, nil
}

func (f *fakeDao) ReplaceBlotterRange(start, end time.Time, entries []model.CashBlotterEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failReplace {
		// Simulated rollback: nothing changes.
		return errors.New("commit failed")
	}
	var kept []model.CashBlotterEntry
	for _, e := range f.entries {
		if e.BlotterDate.Before(start) || e.BlotterDate.After(end) {
			kept = append(kept, e)
		}
	}
	kept = append(kept, entries...)
	sort.Slice(kept, func(i, j int) bool { return kept[i].BlotterDate.Before(kept[j].BlotterDate) })
	f.entries = kept
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		LowThreshold: decimal.RequireFromString("1000.00"),
		DirectionByType: map[string]entity.FlowDirection{
			entity.EventTypePayment:      entity.FlowInflow,
			entity.EventTypeDisbursement: entity.FlowOutflow,
			entity.EventTypeAdjustment:   entity.FlowInflow,
		},
		CronWorkers:       1,
		CronInterval:      time.Second,
		RecalcTimeout:     5 * time.Second,
		ReadRetryAttempts: 3,
		ReadRetryBase:     time.Millisecond,
	}
}

type fixedClock struct {
	t time.Time
}

func clockAt(day string) fixedClock {
	return fixedClock{t: entity.MustParseDate(day).Time().Add(15 * time.Hour)}
}

func (c fixedClock) now() time.Time { return c.t }

func newTestUsecase(d *fakeDao, lk *recordingLocker, clock fixedClock) *cashBlotterUsecase {
	return &cashBlotterUsecase{
		dao:    d,
		locker: lk,
		cfg:    testConfig(),
		nowFn:  clock.now,
	}
}

// recordingLocker wraps the in-memory semantics and counts acquisitions so
// tests can assert lock discipline.
type recordingLocker struct {
	mu       sync.Mutex
	held     bool
	acquires int
	releases int
}

func (l *recordingLocker) TryAcquire(_ context.Context) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held {
		return false, nil
	}
	l.held = true
	l.acquires++
	return true, nil
}

func (l *recordingLocker) Release(_ context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.held = false
	l.releases++
	return nil
}

// scenarioEvents is the canonical three-day fixture: +1000, -3000, +500.
func scenarioEvents() []model.TransactionEvent {
	return []model.TransactionEvent{
		event("2025-01-01", entity.EventTypePayment, "1000.00"),
		event("2025-01-02", entity.EventTypeDisbursement, "3000.00"),
		event("2025-01-03", entity.EventTypePayment, "500.00"),
	}
}

// gappyEvents has activity only on the first and fourth days of a five-day
// window.
func gappyEvents() []model.TransactionEvent {
	return []model.TransactionEvent{
		event("2025-01-01", entity.EventTypePayment, "800.00"),
		event("2025-01-04", entity.EventTypeDisbursement, "150.00"),
	}
}

func event(day, eventType, amount string) model.TransactionEvent {
	return model.TransactionEvent{
		ID:         uuid.NewString(),
		EventType:  eventType,
		Amount:     decimal.RequireFromString(amount),
		OccurredOn: entity.MustParseDate(day).Time(),
		SourceRef:  uuid.NewString(),
	}
}
