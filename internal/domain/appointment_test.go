package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fixtrackhq/FixTrack-AppointmentService/pkg/ptr"
)

func TestAppointmentStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusCanceled.IsTerminal())
	assert.True(t, StatusNoShow.IsTerminal())

	assert.False(t, StatusScheduled.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.False(t, StatusArrived.IsTerminal())
}

func TestAppointmentStatus_IsValid(t *testing.T) {
	for _, s := range []AppointmentStatus{StatusScheduled, StatusConfirmed, StatusArrived, StatusNoShow, StatusCanceled} {
		assert.True(t, s.IsValid(), "status %s", s)
	}

	assert.False(t, AppointmentStatus("pending").IsValid())
	assert.False(t, AppointmentStatus("").IsValid())
}

func TestAppointment_Occupies(t *testing.T) {
	tests := []struct {
		name       string
		timeSlotID *int64
		status     AppointmentStatus
		slot       int64
		want       bool
	}{
		{name: "scheduled in slot occupies", timeSlotID: ptr.Ptr(int64(5)), status: StatusScheduled, slot: 5, want: true},
		{name: "confirmed in slot occupies", timeSlotID: ptr.Ptr(int64(5)), status: StatusConfirmed, slot: 5, want: true},
		{name: "arrived in slot occupies", timeSlotID: ptr.Ptr(int64(5)), status: StatusArrived, slot: 5, want: true},
		{name: "canceled does not occupy", timeSlotID: ptr.Ptr(int64(5)), status: StatusCanceled, slot: 5, want: false},
		{name: "no_show does not occupy", timeSlotID: ptr.Ptr(int64(5)), status: StatusNoShow, slot: 5, want: false},
		{name: "different slot does not occupy", timeSlotID: ptr.Ptr(int64(5)), status: StatusScheduled, slot: 6, want: false},
		{name: "slotless appointment does not occupy", timeSlotID: nil, status: StatusScheduled, slot: 5, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{TimeSlotID: tt.timeSlotID, Status: tt.status}
			assert.Equal(t, tt.want, a.Occupies(tt.slot))
		})
	}
}

func TestAppointment_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusScheduled}).CanBeCancelled())
	assert.True(t, (&Appointment{Status: StatusConfirmed}).CanBeCancelled())

	assert.False(t, (&Appointment{Status: StatusArrived}).CanBeCancelled())
	assert.False(t, (&Appointment{Status: StatusCanceled}).CanBeCancelled())
	assert.False(t, (&Appointment{Status: StatusNoShow}).CanBeCancelled())
}

func TestTimeSlot_EffectiveMaxBookings(t *testing.T) {
	assert.Equal(t, 5, (&TimeSlot{MaxBookings: 5}).EffectiveMaxBookings())
	assert.Equal(t, DefaultMaxBookings, (&TimeSlot{MaxBookings: 0}).EffectiveMaxBookings())
	assert.Equal(t, DefaultMaxBookings, (&TimeSlot{MaxBookings: -2}).EffectiveMaxBookings())
}
