package domain

// Default configuration values
const (
	// DefaultMaxBookings is the slot capacity applied when a time slot has
	// no usable max_bookings value stored. This is a documented business
	// default, not a placeholder.
	DefaultMaxBookings = 3
)

// Business validation constants
const (
	MinMaxBookings = 1
	MaxMaxBookings = 100

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxSlotNameLength           = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// TerminalStatuses are the appointment statuses that release the slot
// capacity unit the appointment held. Used when counting occupancy.
var TerminalStatuses = []AppointmentStatus{
	StatusCanceled,
	StatusNoShow,
}

// ActiveStatuses are the appointment statuses that occupy slot capacity.
var ActiveStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusArrived,
}
