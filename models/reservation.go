package models

import "time"

const (
	ReservationStatusActive    = "active"
	ReservationStatusCancelled = "cancelled"
)

// Reservation occupies one table for one party. The ID is a UUID assigned
// by the reservation service at creation, never by the database.
type Reservation struct {
	ID              string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	TableID         uint      `gorm:"not null;index" json:"table_id"`
	Table           Table     `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Name            string    `gorm:"type:varchar(100);not null" json:"name"`
	PhoneNumber     string    `gorm:"type:varchar(30);not null" json:"phone_number"`
	PartySize       uint      `gorm:"not null" json:"party_size"`
	Time            time.Time `gorm:"not null" json:"time"`
	DurationMinutes uint      `gorm:"not null" json:"duration_minutes"`
	Status          string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}
