package get_customer_appointments

import (
	"time"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/domain"
	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/service/appointments/models"
)

// AppointmentItem is one appointment in the customer's list.
type AppointmentItem struct {
	ID             int64   `json:"id"`
	TimeSlotID     *int64  `json:"timeSlotId,omitempty"`
	StoreID        *int64  `json:"storeId,omitempty"`
	ScheduledDate  string  `json:"scheduledDate"`
	ScheduledStart *string `json:"scheduledStart,omitempty"`
	ScheduledEnd   *string `json:"scheduledEnd,omitempty"`
	Status         string  `json:"status"`
	Notes          *string `json:"notes,omitempty"`
	CreatedAt      string  `json:"createdAt"`
}

// AppointmentListResponse HTTP response model
type AppointmentListResponse struct {
	CustomerID   int64              `json:"customerId"`
	Appointments []*AppointmentItem `json:"appointments"`
	Total        int                `json:"total"`
}

// FromServiceResponse converts the service view into the HTTP model
func FromServiceResponse(customerID int64, resp *models.AppointmentListResponse) *AppointmentListResponse {
	items := make([]*AppointmentItem, len(resp.Appointments))
	for i, a := range resp.Appointments {
		items[i] = &AppointmentItem{
			ID:             a.ID,
			TimeSlotID:     a.TimeSlotID,
			StoreID:        a.StoreID,
			ScheduledDate:  a.ScheduledDate.Format(domain.DateFormat),
			ScheduledStart: a.ScheduledStart,
			ScheduledEnd:   a.ScheduledEnd,
			Status:         a.Status,
			Notes:          a.Notes,
			CreatedAt:      a.CreatedAt.Format(time.RFC3339),
		}
	}
	return &AppointmentListResponse{
		CustomerID:   customerID,
		Appointments: items,
		Total:        resp.Total,
	}
}
