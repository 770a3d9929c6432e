package get_appointment_history

import (
	"context"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetHistory(ctx context.Context, id int64) ([]*models.HistoryEntryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
