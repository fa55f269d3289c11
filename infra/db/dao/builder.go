package dao

import (
	"time"

	"github.com/jinzhu/gorm"

	"github.com/fandersmf/cash-blotter/infra/db/model"
)

type DaoMethod interface {
	GetTransactionEventsInRange(start, end time.Time) ([]model.TransactionEvent, error)
	GetEarliestEventDate() (time.Time, bool, error)

	GetBlotterRange(start, end time.Time) ([]model.CashBlotterEntry, error)
	GetLatestBlotterEntry() (model.CashBlotterEntry, bool, error)
	GetBlotterEntryBefore(date time.Time) (model.CashBlotterEntry, bool, error)
	ReplaceBlotterRange(start, end time.Time, entries []model.CashBlotterEntry) error
}

type dao struct {
	db *gorm.DB
}

func NewDaoMethod(db *gorm.DB) DaoMethod {
	return &dao{db: db}
}
