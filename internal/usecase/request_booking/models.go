package request_booking

import (
	"time"

	"github.com/fixtrackhq/FixTrack-AppointmentService/pkg/types"
)

// Request asks to place a new appointment into a slot on a date.
type Request struct {
	CustomerID  int64
	DeviceID    *int64
	TimeSlotID  int64
	Date        time.Time // calendar date the slot applies to
	Notes       *string
	RequestedBy int64 // authenticated user recorded in the status history
}

// Response is the created appointment.
type Response struct {
	ID            int64
	CustomerID    int64
	DeviceID      *int64
	TimeSlotID    int64
	StoreID       *int64
	ScheduledDate time.Time
	Status        string
	Notes         *string

	// Denormalized slot data for display
	SlotName      string
	SlotStartTime types.TimeString
	SlotEndTime   types.TimeString

	CreatedAt time.Time
}
