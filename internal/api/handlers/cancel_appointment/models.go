package cancel_appointment

import (
	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/service/appointments/models"
)

// CancelRequest HTTP request model
type CancelRequest struct {
	Reason string `json:"reason"`
}

// ToServiceRequest converts the HTTP request into the service model
func (r *CancelRequest) ToServiceRequest(changedBy int64) *models.CancelRequest {
	return &models.CancelRequest{
		Reason:    r.Reason,
		ChangedBy: changedBy,
	}
}
