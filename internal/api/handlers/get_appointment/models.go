package get_appointment

import (
	"time"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/domain"
	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/service/appointments/models"
)

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID                 int64   `json:"id"`
	CustomerID         int64   `json:"customerId"`
	DeviceID           *int64  `json:"deviceId,omitempty"`
	TimeSlotID         *int64  `json:"timeSlotId,omitempty"`
	StoreID            *int64  `json:"storeId,omitempty"`
	ScheduledDate      string  `json:"scheduledDate"`
	ScheduledStart     *string `json:"scheduledStart,omitempty"`
	ScheduledEnd       *string `json:"scheduledEnd,omitempty"`
	Status             string  `json:"status"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromServiceResponse converts the service view into the HTTP model
func FromServiceResponse(resp *models.AppointmentResponse) *AppointmentResponse {
	out := &AppointmentResponse{
		ID:                 resp.ID,
		CustomerID:         resp.CustomerID,
		DeviceID:           resp.DeviceID,
		TimeSlotID:         resp.TimeSlotID,
		StoreID:            resp.StoreID,
		ScheduledDate:      resp.ScheduledDate.Format(domain.DateFormat),
		ScheduledStart:     resp.ScheduledStart,
		ScheduledEnd:       resp.ScheduledEnd,
		Status:             resp.Status,
		Notes:              resp.Notes,
		CancellationReason: resp.CancellationReason,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
	if resp.CancelledAt != nil {
		s := resp.CancelledAt.Format(time.RFC3339)
		out.CancelledAt = &s
	}
	return out
}
