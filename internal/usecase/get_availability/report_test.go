package get_availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/domain"
	"github.com/fixtrackhq/FixTrack-AppointmentService/pkg/ptr"
)

func TestCountBookingsBySlot(t *testing.T) {
	slotA := ptr.Ptr(int64(1))
	slotB := ptr.Ptr(int64(2))

	appointments := []*domain.Appointment{
		{TimeSlotID: slotA, Status: domain.StatusScheduled},
		{TimeSlotID: slotA, Status: domain.StatusConfirmed},
		{TimeSlotID: slotA, Status: domain.StatusArrived},
		{TimeSlotID: slotA, Status: domain.StatusCanceled}, // freed
		{TimeSlotID: slotA, Status: domain.StatusNoShow},   // freed
		{TimeSlotID: slotB, Status: domain.StatusScheduled},
		{TimeSlotID: nil, Status: domain.StatusScheduled}, // slotless
	}

	counts := countBookingsBySlot(appointments)

	assert.Equal(t, 3, counts[1])
	assert.Equal(t, 1, counts[2])
	assert.Len(t, counts, 2)
}

func TestCountBookingsBySlot_Empty(t *testing.T) {
	assert.Empty(t, countBookingsBySlot(nil))
	assert.Empty(t, countBookingsBySlot([]*domain.Appointment{}))
}

func TestBuildReports(t *testing.T) {
	slots := []*domain.TimeSlot{
		{ID: 1, Name: "Morning", StartTime: "09:00", EndTime: "11:00", MaxBookings: 3, IsActive: true},
		{ID: 2, Name: "Midday", StartTime: "11:00", EndTime: "13:00", MaxBookings: 2, IsActive: true},
		{ID: 3, Name: "Afternoon", StartTime: "13:00", EndTime: "15:00", MaxBookings: 3, IsActive: true},
	}

	counts := map[int64]int{1: 3, 2: 1}

	reports := buildReports(slots, counts)

	assert.Len(t, reports, 3)

	// Slot order is preserved.
	assert.Equal(t, int64(1), reports[0].SlotID)
	assert.Equal(t, int64(2), reports[1].SlotID)
	assert.Equal(t, int64(3), reports[2].SlotID)

	assert.Equal(t, domain.AvailabilityFull, reports[0].Level)
	assert.False(t, reports[0].IsAvailable)

	assert.Equal(t, domain.AvailabilityLimited, reports[1].Level)
	assert.Equal(t, 1, reports[1].RemainingSlots)

	// Slot absent from counts has zero bookings.
	assert.Equal(t, 0, reports[2].CurrentBookings)
	assert.Equal(t, domain.AvailabilityAvailable, reports[2].Level)
}

func TestBuildReports_NilCounts(t *testing.T) {
	slots := []*domain.TimeSlot{
		{ID: 1, Name: "Morning", StartTime: "09:00", EndTime: "11:00", MaxBookings: 3, IsActive: true},
	}

	reports := buildReports(slots, nil)

	assert.Len(t, reports, 1)
	assert.Equal(t, 0, reports[0].CurrentBookings)
	assert.Equal(t, 3, reports[0].RemainingSlots)
	assert.True(t, reports[0].IsAvailable)
}
