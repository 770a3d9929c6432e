package get_availability

import (
	"time"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/domain"
)

// Request asks for the per-slot availability report of a date.
type Request struct {
	StoreID *int64    // nil = store-agnostic view
	Date    time.Time // calendar date, time portion ignored
}

// Response carries one report per active slot, in slot display order.
type Response struct {
	Date    time.Time
	StoreID *int64
	Slots   []domain.SlotAvailability
}
