package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashBlotterEntry is one calendar day of the cash blotter. Rows are only
// ever written by the recalculation path, always as a whole-range replace.
type CashBlotterEntry struct {
	ID                int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	BlotterDate       time.Time       `gorm:"type:date;unique_index;not null" json:"blotter_date"`
	TotalInflow       decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"total_inflow"`
	TotalOutflow      decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"total_outflow"`
	CalculatedBalance decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"calculated_balance"`
	CreatedAt         time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"not null" json:"updated_at"`
}

func (CashBlotterEntry) TableName() string {
	return "cash_blotter"
}
