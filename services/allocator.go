package services

import "github.com/plateapp/reservations/models"

// CandidateSource is the slice of the registry the allocator needs: a view
// of available tables and the atomic claim on one of them.
type CandidateSource interface {
	ListAvailable(section string) ([]models.Table, error)
	TryReserve(tableID uint) (bool, error)
}

// Assignment is a successfully claimed table together with how long the
// party will hold it.
type Assignment struct {
	Table           models.Table
	DurationMinutes uint
}

type Allocator struct {
	registry CandidateSource
}

func NewAllocator(registry CandidateSource) *Allocator {
	return &Allocator{registry: registry}
}

// Allocate finds and claims the smallest available table that seats the
// party. Candidates come back ordered by ascending capacity; the first one
// with enough seats is tried, and losing the claim to a concurrent caller
// moves on to the next candidate instead of failing the request. The loop is
// bounded by the candidate list: a lost table is known-taken and never
// retried within the same call.
func (a *Allocator) Allocate(partySize uint, section string) (Assignment, error) {
	duration, err := DurationForParty(partySize)
	if err != nil {
		return Assignment{}, err
	}

	tables, err := a.registry.ListAvailable(section)
	if err != nil {
		return Assignment{}, err
	}

	for _, table := range tables {
		if table.Capacity < partySize {
			continue
		}
		won, err := a.registry.TryReserve(table.ID)
		if err != nil {
			return Assignment{}, err
		}
		if !won {
			continue
		}
		return Assignment{Table: table, DurationMinutes: duration}, nil
	}
	return Assignment{}, ErrNoTableAvailable
}
