package campaign

import "errors"

var (
	// ErrBoostConflict is returned when another boost campaign is already
	// active for the business. Also returned when the exclusivity lookup
	// itself fails: an unknown state is treated as a conflict.
	ErrBoostConflict = errors.New("an active boost campaign already exists for this business")

	// ErrNoEnabledDays is returned when a boost schedule has no enabled day
	// whose end has not yet passed.
	ErrNoEnabledDays = errors.New("campaign schedule has no remaining enabled days")
)
