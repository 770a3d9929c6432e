package domain

import (
	"time"

	"github.com/fixtrackhq/FixTrack-AppointmentService/pkg/types"
)

// TimeSlot is a named, time-bounded, capacity-limited bucket that
// appointments can be placed into for a given calendar date.
type TimeSlot struct {
	ID      int64
	StoreID *int64 // nil = store-agnostic slot
	Name    string
	// StartTime/EndTime are local times of day; the calendar date comes
	// from the appointment.
	StartTime   types.TimeString
	EndTime     types.TimeString
	MaxBookings int
	// IsActive soft-disables the slot. Inactive slots are excluded from
	// availability and booking; slots are never physically deleted.
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveMaxBookings returns the slot capacity, falling back to
// DefaultMaxBookings when the stored value is unset or invalid.
func (s *TimeSlot) EffectiveMaxBookings() int {
	if s.MaxBookings <= 0 {
		return DefaultMaxBookings
	}
	return s.MaxBookings
}
