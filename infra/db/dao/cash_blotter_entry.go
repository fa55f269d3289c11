package dao

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"

	"github.com/fandersmf/cash-blotter/infra/db/model"
)

func (d *dao) GetBlotterRange(start, end time.Time) ([]model.CashBlotterEntry, error) {
	var entries []model.CashBlotterEntry
	if err := d.db.
		Where("blotter_date BETWEEN ? AND ?", start, end).
		Order("blotter_date ASC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch blotter range: %w", err)
	}
	return entries, nil
}

func (d *dao) GetLatestBlotterEntry() (model.CashBlotterEntry, bool, error) {
	var entry model.CashBlotterEntry
	err := d.db.
		Order("blotter_date DESC").
		First(&entry).Error
	if gorm.IsRecordNotFoundError(err) {
		return entry, false, nil
	}
	if err != nil {
		return entry, false, fmt.Errorf("failed to fetch latest blotter entry: %w", err)
	}
	return entry, true, nil
}

func (d *dao) GetBlotterEntryBefore(date time.Time) (model.CashBlotterEntry, bool, error) {
	var entry model.CashBlotterEntry
	err := d.db.
		Where("blotter_date < ?", date).
		Order("blotter_date DESC").
		First(&entry).Error
	if gorm.IsRecordNotFoundError(err) {
		return entry, false, nil
	}
	if err != nil {
		return entry, false, fmt.Errorf("failed to fetch blotter entry before %s: %w", date.Format("2006-01-02"), err)
	}
	return entry, true, nil
}

// ReplaceBlotterRange swaps every row in [start, end] for the given entries
// inside one transaction, so readers see the old range or the new one, never
// a mix.
func (d *dao) ReplaceBlotterRange(start, end time.Time, entries []model.CashBlotterEntry) error {
	tx := d.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin blotter transaction: %w", tx.Error)
	}

	if err := tx.
		Where("blotter_date BETWEEN ? AND ?", start, end).
		Delete(&model.CashBlotterEntry{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear blotter range: %w", err)
	}

	for i := range entries {
		if err := tx.Create(&entries[i]).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert blotter entry for %s: %w",
				entries[i].BlotterDate.Format("2006-01-02"), err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit blotter range: %w", err)
	}
	return nil
}
