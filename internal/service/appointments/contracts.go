package appointments

import (
	"context"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/domain"
)

// AppointmentRepository is the appointment ledger surface the service needs
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListByDate(ctx context.Context, filter domain.DateAppointmentsFilter) ([]*domain.Appointment, error)
	ListByCustomer(ctx context.Context, customerID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// HistoryRepository records and serves the status audit trail
type HistoryRepository interface {
	Add(ctx context.Context, entry *domain.StatusHistoryEntry) error
	ListByAppointment(ctx context.Context, appointmentID int64) ([]*domain.StatusHistoryEntry, error)
}

// TransactionManager groups a status write with its history row
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface the service needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
