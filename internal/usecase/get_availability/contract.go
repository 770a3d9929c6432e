package get_availability

import (
	"context"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/domain"
)

// TimeSlotRepository is the slice of the time slot registry this use case needs
type TimeSlotRepository interface {
	// ListActive returns every active slot, optionally scoped to a store
	ListActive(ctx context.Context, storeID *int64) ([]*domain.TimeSlot, error)
}

// AppointmentRepository is the slice of the appointment ledger this use case needs
type AppointmentRepository interface {
	// ListByDate returns all appointments for a date, every status included
	ListByDate(ctx context.Context, filter domain.DateAppointmentsFilter) ([]*domain.Appointment, error)
}

// Logger is the logging surface this use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
