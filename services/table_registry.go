package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/plateapp/reservations/models"
)

// TableRegistry owns every mutation of a table's availability flag.
// Reserving goes through TryReserve only, so concurrent allocations can
// never both claim the same table.
type TableRegistry struct {
	DB *gorm.DB
}

func NewTableRegistry(db *gorm.DB) *TableRegistry {
	return &TableRegistry{DB: db}
}

// ListAvailable returns available tables ordered by ascending capacity, so
// callers scanning front-to-back take the smallest table that fits. An empty
// section matches all sections.
func (tr *TableRegistry) ListAvailable(section string) ([]models.Table, error) {
	query := tr.DB.Where("is_available = ?", true)
	if section != "" {
		query = query.Where("section = ?", section)
	}

	var tables []models.Table
	if err := query.Order("capacity ASC").Find(&tables).Error; err != nil {
		return nil, fmt.Errorf("list available tables: %w", err)
	}
	return tables, nil
}

// TryReserve atomically claims a table: a single conditional UPDATE guarded
// on the current availability. It reports false when the table was already
// taken, which a concurrent winner makes indistinguishable from never having
// been available.
func (tr *TableRegistry) TryReserve(tableID uint) (bool, error) {
	result := tr.DB.Model(&models.Table{}).
		Where("id = ? AND is_available = ?", tableID, true).
		Update("is_available", false)
	if result.Error != nil {
		return false, fmt.Errorf("reserve table %d: %w", tableID, result.Error)
	}
	return result.RowsAffected == 1, nil
}

// Release marks a table available again. Releasing a table that is already
// available is a no-op, not an error.
func (tr *TableRegistry) Release(tableID uint) error {
	var table models.Table
	if err := tr.DB.First(&table, tableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTableNotFound
		}
		return fmt.Errorf("load table %d: %w", tableID, err)
	}
	if table.IsAvailable {
		return nil
	}
	if err := tr.DB.Model(&table).Update("is_available", true).Error; err != nil {
		return fmt.Errorf("release table %d: %w", tableID, err)
	}
	return nil
}

// CreateTable provisions a new table, available by default. Administrative;
// not part of the reservation hot path.
func (tr *TableRegistry) CreateTable(section string, capacity uint) (models.Table, error) {
	if capacity == 0 {
		return models.Table{}, ErrInvalidCapacity
	}
	table := models.Table{
		Section:     section,
		Capacity:    capacity,
		IsAvailable: true,
	}
	if err := tr.DB.Create(&table).Error; err != nil {
		return models.Table{}, fmt.Errorf("create table: %w", err)
	}
	return table, nil
}

// DeleteTable removes a table from the registry.
func (tr *TableRegistry) DeleteTable(tableID uint) error {
	var table models.Table
	if err := tr.DB.First(&table, tableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTableNotFound
		}
		return fmt.Errorf("load table %d: %w", tableID, err)
	}
	if err := tr.DB.Delete(&table).Error; err != nil {
		return fmt.Errorf("delete table %d: %w", tableID, err)
	}
	return nil
}
