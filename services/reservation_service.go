package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/plateapp/reservations/models"
	"github.com/plateapp/reservations/utils"
)

// ReservationService is the facade external callers go through: it composes
// the allocator, the table registry and the reservation ledger.
type ReservationService struct {
	DB        *gorm.DB
	registry  *TableRegistry
	allocator *Allocator
}

func NewReservationService(db *gorm.DB) *ReservationService {
	registry := NewTableRegistry(db)
	return &ReservationService{
		DB:        db,
		registry:  registry,
		allocator: NewAllocator(registry),
	}
}

type CreateReservationInput struct {
	Name        string
	PartySize   uint
	PhoneNumber string
	Time        time.Time
	Section     string
}

// CreateReservation allocates a table and writes the reservation to the
// ledger. If the ledger write fails after the table was already claimed, the
// table is released again before the original error propagates, so no table
// is left permanently stranded.
func (s *ReservationService) CreateReservation(in CreateReservationInput) (models.Reservation, error) {
	assignment, err := s.allocator.Allocate(in.PartySize, in.Section)
	if err != nil {
		return models.Reservation{}, err
	}

	reservation := models.Reservation{
		ID:              uuid.NewString(),
		TableID:         assignment.Table.ID,
		Name:            in.Name,
		PhoneNumber:     in.PhoneNumber,
		PartySize:       in.PartySize,
		Time:            in.Time,
		DurationMinutes: assignment.DurationMinutes,
		Status:          models.ReservationStatusActive,
	}
	if err := s.DB.Create(&reservation).Error; err != nil {
		if relErr := s.registry.Release(assignment.Table.ID); relErr != nil {
			utils.ErrorLogger.Printf("Failed to release table %d after ledger write error: %v",
				assignment.Table.ID, relErr)
		}
		return models.Reservation{}, fmt.Errorf("write reservation: %w", err)
	}
	return reservation, nil
}

// CancelReservation marks an active reservation cancelled and releases its
// table. Both updates run in one transaction: a cancelled row without a
// released table (or the reverse) must never be observable.
func (s *ReservationService) CancelReservation(id string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		err := tx.Where("id = ? AND status = ?", id, models.ReservationStatusActive).
			First(&reservation).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("load reservation %s: %w", id, err)
		}

		reservation.Status = models.ReservationStatusCancelled
		if err := tx.Save(&reservation).Error; err != nil {
			return fmt.Errorf("cancel reservation %s: %w", id, err)
		}
		return NewTableRegistry(tx).Release(reservation.TableID)
	})
}

// GetReservation looks up a single reservation, active or cancelled.
func (s *ReservationService) GetReservation(id string) (models.Reservation, error) {
	var reservation models.Reservation
	if err := s.DB.First(&reservation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Reservation{}, ErrReservationNotFound
		}
		return models.Reservation{}, fmt.Errorf("load reservation %s: %w", id, err)
	}
	return reservation, nil
}

// ListReservations returns the full ledger, newest first.
func (s *ReservationService) ListReservations() ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := s.DB.Order("created_at DESC").Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return reservations, nil
}

// ViewAvailableTables is a read-only passthrough to the registry.
func (s *ReservationService) ViewAvailableTables(section string) ([]models.Table, error) {
	return s.registry.ListAvailable(section)
}
