package get_store_slots

import (
	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/service/slots/models"
)

// SlotItem is one slot in the store's configuration list.
type SlotItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	MaxBookings int    `json:"maxBookings"`
	IsActive    bool   `json:"isActive"`
}

// SlotListResponse HTTP response model
type SlotListResponse struct {
	StoreID int64       `json:"storeId"`
	Slots   []*SlotItem `json:"slots"`
	Total   int         `json:"total"`
}

// FromServiceResponse converts the service view into the HTTP model
func FromServiceResponse(storeID int64, resp *models.SlotListResponse) *SlotListResponse {
	items := make([]*SlotItem, len(resp.Slots))
	for i, s := range resp.Slots {
		items[i] = &SlotItem{
			ID:          s.ID,
			Name:        s.Name,
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
			MaxBookings: s.MaxBookings,
			IsActive:    s.IsActive,
		}
	}
	return &SlotListResponse{
		StoreID: storeID,
		Slots:   items,
		Total:   resp.Total,
	}
}
