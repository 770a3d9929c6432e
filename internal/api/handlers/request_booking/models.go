package request_booking

import (
	"time"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/domain"
	requestBooking "github.com/fixtrackhq/FixTrack-AppointmentService/internal/usecase/request_booking"
)

// BookingRequest HTTP request model
type BookingRequest struct {
	CustomerID    int64   `json:"customerId"`
	DeviceID      *int64  `json:"deviceId,omitempty"`
	TimeSlotID    int64   `json:"timeSlotId"`
	ScheduledDate string  `json:"scheduledDate"` // "2025-10-15"
	Notes         *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID            int64   `json:"id"`
	CustomerID    int64   `json:"customerId"`
	DeviceID      *int64  `json:"deviceId,omitempty"`
	TimeSlotID    int64   `json:"timeSlotId"`
	StoreID       *int64  `json:"storeId,omitempty"`
	ScheduledDate string  `json:"scheduledDate"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`
	SlotName      string  `json:"slotName"`
	SlotStartTime string  `json:"slotStartTime"`
	SlotEndTime   string  `json:"slotEndTime"`
	CreatedAt     string  `json:"createdAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *BookingRequest) ToUseCaseRequest(requestedBy int64) (*requestBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.ScheduledDate)
	if err != nil {
		return nil, err
	}

	return &requestBooking.Request{
		CustomerID:  r.CustomerID,
		DeviceID:    r.DeviceID,
		TimeSlotID:  r.TimeSlotID,
		Date:        date,
		Notes:       r.Notes,
		RequestedBy: requestedBy,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model
func FromUseCaseResponse(resp *requestBooking.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            resp.ID,
		CustomerID:    resp.CustomerID,
		DeviceID:      resp.DeviceID,
		TimeSlotID:    resp.TimeSlotID,
		StoreID:       resp.StoreID,
		ScheduledDate: resp.ScheduledDate.Format(domain.DateFormat),
		Status:        resp.Status,
		Notes:         resp.Notes,
		SlotName:      resp.SlotName,
		SlotStartTime: resp.SlotStartTime.String(),
		SlotEndTime:   resp.SlotEndTime.String(),
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
