package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionEvent is a dated cash-affecting event recorded by the loan and
// payment modules. Read-only here: the blotter never writes these rows.
type TransactionEvent struct {
	ID         string          `gorm:"primaryKey;size:36" json:"id"`
	EventType  string          `gorm:"size:50;not null;index" json:"event_type"`
	Amount     decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	OccurredOn time.Time       `gorm:"type:date;not null;index" json:"occurred_on"`
	SourceRef  string          `gorm:"size:100;not null" json:"source_ref"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
}

func (TransactionEvent) TableName() string {
	return "transaction_events"
}
