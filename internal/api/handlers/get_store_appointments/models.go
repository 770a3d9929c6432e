package get_store_appointments

import (
	"time"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/domain"
	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/service/appointments/models"
)

// AppointmentItem is one appointment in the day view.
type AppointmentItem struct {
	ID             int64   `json:"id"`
	CustomerID     int64   `json:"customerId"`
	DeviceID       *int64  `json:"deviceId,omitempty"`
	TimeSlotID     *int64  `json:"timeSlotId,omitempty"`
	ScheduledStart *string `json:"scheduledStart,omitempty"`
	ScheduledEnd   *string `json:"scheduledEnd,omitempty"`
	Status         string  `json:"status"`
	Notes          *string `json:"notes,omitempty"`
	CreatedAt      string  `json:"createdAt"`
}

// DayScheduleResponse HTTP response model
type DayScheduleResponse struct {
	StoreID      int64              `json:"storeId"`
	Date         string             `json:"date"`
	Appointments []*AppointmentItem `json:"appointments"`
	Total        int                `json:"total"`
}

// FromServiceResponse converts the service view into the HTTP model
func FromServiceResponse(storeID int64, date time.Time, resp *models.AppointmentListResponse) *DayScheduleResponse {
	items := make([]*AppointmentItem, len(resp.Appointments))
	for i, a := range resp.Appointments {
		items[i] = &AppointmentItem{
			ID:             a.ID,
			CustomerID:     a.CustomerID,
			DeviceID:       a.DeviceID,
			TimeSlotID:     a.TimeSlotID,
			ScheduledStart: a.ScheduledStart,
			ScheduledEnd:   a.ScheduledEnd,
			Status:         a.Status,
			Notes:          a.Notes,
			CreatedAt:      a.CreatedAt.Format(time.RFC3339),
		}
	}
	return &DayScheduleResponse{
		StoreID:      storeID,
		Date:         date.Format(domain.DateFormat),
		Appointments: items,
		Total:        resp.Total,
	}
}
