package get_customer_appointments

import (
	"context"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/service/appointments/models"
)

type AppointmentsService interface {
	ListByCustomer(ctx context.Context, req *models.ListByCustomerRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
