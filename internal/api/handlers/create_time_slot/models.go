package create_time_slot

import (
	"time"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/service/slots/models"
)

// CreateSlotRequest HTTP request model. MaxBookings of zero means
// "use the business default".
type CreateSlotRequest struct {
	StoreID     *int64 `json:"storeId,omitempty"`
	Name        string `json:"name"`
	StartTime   string `json:"startTime"` // "09:00"
	EndTime     string `json:"endTime"`   // "11:00"
	MaxBookings int    `json:"maxBookings,omitempty"`
	IsActive    *bool  `json:"isActive,omitempty"` // nil = active
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
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToServiceRequest converts the HTTP request into the service model
func (r *CreateSlotRequest) ToServiceRequest() *models.CreateSlotRequest {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return &models.CreateSlotRequest{
		StoreID:     r.StoreID,
		Name:        r.Name,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		MaxBookings: r.MaxBookings,
		IsActive:    isActive,
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
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
