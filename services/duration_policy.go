package services

// Occupancy tiers: how long a table is held, by party size. The tiers are a
// house policy and deliberately ignore the capacity of the table actually
// assigned; capacity only decides which tables are candidates.
func DurationForParty(partySize uint) (uint, error) {
	switch {
	case partySize == 0:
		return 0, ErrInvalidPartySize
	case partySize <= 3:
		return 90, nil // 1.5 hours
	case partySize <= 7:
		return 120, nil // 2 hours
	case partySize <= 10:
		return 150, nil // 2.5 hours
	case partySize <= 15:
		return 180, nil // 3 hours
	default:
		return 0, ErrPartyTooLarge
	}
}
