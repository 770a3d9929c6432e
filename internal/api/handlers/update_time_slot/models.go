package update_time_slot

import (
	"time"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/service/slots/models"
)

// UpdateSlotRequest HTTP request model. Setting isActive to false
// soft-disables the slot without touching existing appointments.
type UpdateSlotRequest struct {
	Name        string `json:"name"`
	StartTime   string `json:"startTime"` // "09:00"
	EndTime     string `json:"endTime"`   // "11:00"
	MaxBookings int    `json:"maxBookings,omitempty"`
	IsActive    bool   `json:"isActive"`
}

// SlotResponse HTTP response model
type SlotResponse struct {
	ID          int64  `json:"id"`
	StoreID     *int64 `json:"storeId,omitempty"`
	Name        string `json:"name"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	MaxBookings int    `json:"maxBookings"`
	IsActive    bool   `json:"isActive"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToServiceRequest converts the HTTP request into the service model
func (r *UpdateSlotRequest) ToServiceRequest() *models.UpdateSlotRequest {
	return &models.UpdateSlotRequest{
		Name:        r.Name,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		MaxBookings: r.MaxBookings,
		IsActive:    r.IsActive,
	}
}

// FromServiceResponse converts the service view into the HTTP model
func FromServiceResponse(resp *models.SlotResponse) *SlotResponse {
	return &SlotResponse{
		ID:          resp.ID,
		StoreID:     resp.StoreID,
		Name:        resp.Name,
		StartTime:   resp.StartTime,
		EndTime:     resp.EndTime,
		MaxBookings: resp.MaxBookings,
		IsActive:    resp.IsActive,
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
