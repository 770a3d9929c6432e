package domain

import "github.com/fixtrackhq/FixTrack-AppointmentService/pkg/types"

// AvailabilityLevel is the three-way classification of remaining capacity.
type AvailabilityLevel string

const (
	AvailabilityFull      AvailabilityLevel = "full"
	AvailabilityLimited   AvailabilityLevel = "limited"
	AvailabilityAvailable AvailabilityLevel = "available"
)

// ClassifyAvailability maps remaining capacity onto an AvailabilityLevel:
// 0 remaining is full, exactly 1 is limited, 2 or more is available.
func ClassifyAvailability(remaining int) AvailabilityLevel {
	switch {
	case remaining <= 0:
		return AvailabilityFull
	case remaining == 1:
		return AvailabilityLimited
	default:
		return AvailabilityAvailable
	}
}

// SlotAvailability is the derived per-slot capacity report for a date.
// It is never persisted; it is recomputed from the ledger on every call.
type SlotAvailability struct {
	SlotID          int64
	Name            string
	StartTime       types.TimeString
	EndTime         types.TimeString
	MaxBookings     int
	CurrentBookings int
	RemainingSlots  int
	IsAvailable     bool
	Level           AvailabilityLevel
}

// NewSlotAvailability derives the report for slot given its current
// occupancy count.
func NewSlotAvailability(slot *TimeSlot, currentBookings int) SlotAvailability {
	max := slot.EffectiveMaxBookings()
	remaining := max - currentBookings

	return SlotAvailability{
		SlotID:          slot.ID,
		Name:            slot.Name,
		StartTime:       slot.StartTime,
		EndTime:         slot.EndTime,
		MaxBookings:     max,
		CurrentBookings: currentBookings,
		RemainingSlots:  remaining,
		IsAvailable:     remaining > 0,
		Level:           ClassifyAvailability(remaining),
	}
}
