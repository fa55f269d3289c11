package cashblotter

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fandersmf/cash-blotter/config"
	"github.com/fandersmf/cash-blotter/entity"
	"github.com/fandersmf/cash-blotter/infra/db/dao"
	"github.com/fandersmf/cash-blotter/infra/db/model"
	"github.com/fandersmf/cash-blotter/infra/locker"
)

type CashBlotterUsecase interface {
	RecalculateFromDate(ctx context.Context, start entity.Date) error
	RecalculateFromEarliest(ctx context.Context) error
	ProcessDailyBlotter(ctx context.Context, date entity.Date) error

	GetCurrentBalance(ctx context.Context) (decimal.Decimal, error)
	GetBlotterRange(ctx context.Context, start, end entity.Date) ([]model.CashBlotterEntry, error)
	GetCashFlowSummary(ctx context.Context, start, end entity.Date) (entity.CashFlowSummary, error)
	GetDailyCashFlow(ctx context.Context, days int) ([]entity.DailyCashFlowPoint, error)
	GetMonthlyCashFlow(ctx context.Context, months int) ([]entity.MonthlyCashFlowPoint, error)
	GetCashAlerts(ctx context.Context) ([]entity.CashAlert, error)
}

type cashBlotterUsecase struct {
	dao    dao.DaoMethod
	locker locker.Locker
	cfg    *config.Config
	nowFn  func() time.Time
}

func NewCashBlotterUsecase(d dao.DaoMethod, lk locker.Locker, cfg *config.Config) CashBlotterUsecase {
	return &cashBlotterUsecase{
		dao:    d,
		locker: lk,
		cfg:    cfg,
		nowFn:  time.Now,
	}
}
