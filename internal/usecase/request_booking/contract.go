package request_booking

import (
	"context"
	"time"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/domain"
	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/integrations/storeservice"
)

// AppointmentRepository is the slice of the appointment ledger this use case needs
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	// CountActiveForSlot re-derives the (date, slot) occupancy at write time
	CountActiveForSlot(ctx context.Context, date time.Time, timeSlotID int64) (int, error)
}

// TimeSlotRepository is the slice of the time slot registry this use case needs
type TimeSlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
}

// HistoryRepository records the status audit trail
type HistoryRepository interface {
	Add(ctx context.Context, entry *domain.StatusHistoryEntry) error
}

// StoreServiceClient is the StoreService surface this use case needs
type StoreServiceClient interface {
	GetStoreWithGracefulDegradation(ctx context.Context, storeID int64) (*storeservice.Store, error)
}

// TransactionManager groups the appointment insert with its history row
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface this use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
