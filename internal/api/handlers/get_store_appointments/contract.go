package get_store_appointments

import (
	"context"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/service/appointments/models"
)

type AppointmentsService interface {
	ListForDate(ctx context.Context, req *models.ListForDateRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
