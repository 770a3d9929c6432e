package update_appointment_status

import (
	"time"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/domain"
	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/service/appointments/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string  `json:"status"`
	Note   *string `json:"note,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID            int64   `json:"id"`
	CustomerID    int64   `json:"customerId"`
	TimeSlotID    *int64  `json:"timeSlotId,omitempty"`
	StoreID       *int64  `json:"storeId,omitempty"`
	ScheduledDate string  `json:"scheduledDate"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToServiceRequest converts the HTTP request into the service model
func (r *UpdateStatusRequest) ToServiceRequest(changedBy int64) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		Status:    r.Status,
		ChangedBy: changedBy,
		Note:      r.Note,
	}
}

// FromServiceResponse converts the service view into the HTTP model
func FromServiceResponse(resp *models.AppointmentResponse) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            resp.ID,
		CustomerID:    resp.CustomerID,
		TimeSlotID:    resp.TimeSlotID,
		StoreID:       resp.StoreID,
		ScheduledDate: resp.ScheduledDate.Format(domain.DateFormat),
		Status:        resp.Status,
		Notes:         resp.Notes,
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
