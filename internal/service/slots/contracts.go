package slots

import (
	"context"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/domain"
)

// TimeSlotRepository is the registry surface the service needs
type TimeSlotRepository interface {
	List(ctx context.Context, storeID *int64, includeInactive bool) ([]*domain.TimeSlot, error)
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
	Create(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error)
	Update(ctx context.Context, slot *domain.TimeSlot) error
}

// Logger is the logging surface the service needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
