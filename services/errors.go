package services

import "errors"

var (
	ErrInvalidPartySize    = errors.New("party size must be positive")
	ErrInvalidCapacity     = errors.New("table capacity must be positive")
	ErrPartyTooLarge       = errors.New("party size too large for any table")
	ErrNoTableAvailable    = errors.New("no available tables for this party size")
	ErrTableNotFound       = errors.New("table not found")
	ErrReservationNotFound = errors.New("reservation not found")
)
