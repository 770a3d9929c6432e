package get_appointment_history

import (
	"time"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/service/appointments/models"
)

// HistoryEntryItem is one status change in the trail.
type HistoryEntryItem struct {
	ID        int64   `json:"id"`
	OldStatus *string `json:"oldStatus,omitempty"`
	NewStatus string  `json:"newStatus"`
	ChangedBy int64   `json:"changedBy"`
	Note      *string `json:"note,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// HistoryResponse HTTP response model, oldest change first.
type HistoryResponse struct {
	AppointmentID int64               `json:"appointmentId"`
	History       []*HistoryEntryItem `json:"history"`
}

// FromServiceResponse converts the service view into the HTTP model
func FromServiceResponse(appointmentID int64, entries []*models.HistoryEntryResponse) *HistoryResponse {
	history := make([]*HistoryEntryItem, len(entries))
	for i, e := range entries {
		history[i] = &HistoryEntryItem{
			ID:        e.ID,
			OldStatus: e.OldStatus,
			NewStatus: e.NewStatus,
			ChangedBy: e.ChangedBy,
			Note:      e.Note,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		}
	}
	return &HistoryResponse{
		AppointmentID: appointmentID,
		History:       history,
	}
}
