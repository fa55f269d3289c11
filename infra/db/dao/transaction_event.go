package dao

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"

	"github.com/fandersmf/cash-blotter/infra/db/model"
)

func (d *dao) GetTransactionEventsInRange(start, end time.Time) ([]model.TransactionEvent, error) {
	var events []model.TransactionEvent
	if err := d.db.
		Where("occurred_on BETWEEN ? AND ?", start, end).
		Order("occurred_on ASC").
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch transaction events: %w", err)
	}
	return events, nil
}

func (d *dao) GetEarliestEventDate() (time.Time, bool, error) {
	var event model.TransactionEvent
	err := d.db.
		Order("occurred_on ASC").
		First(&event).Error
	if gorm.IsRecordNotFoundError(err) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to fetch earliest event date: %w", err)
	}
	return event.OccurredOn, true, nil
}
