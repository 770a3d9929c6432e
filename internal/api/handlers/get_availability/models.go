package get_availability

import (
	"time"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/domain"
	getAvailability "github.com/fixtrackhq/FixTrack-AppointmentService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date    string           `json:"date"`
	StoreID int64            `json:"storeId"`
	Slots   []SlotReportItem `json:"slots"`
}

// SlotReportItem is the per-slot capacity report
type SlotReportItem struct {
	SlotID            int64  `json:"slotId"`
	Name              string `json:"name"`
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	MaxBookings       int    `json:"maxBookings"`
	CurrentBookings   int    `json:"currentBookings"`
	RemainingSlots    int    `json:"remainingSlots"`
	IsAvailable       bool   `json:"isAvailable"`
	AvailabilityLevel string `json:"availabilityLevel"`
}

// ToUseCaseRequest builds the use case request from URL parameters
func ToUseCaseRequest(storeID int64, dateStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		StoreID: &storeID,
		Date:    date,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model
func FromUseCaseResponse(storeID int64, resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotReportItem, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotReportItem{
			SlotID:            s.SlotID,
			Name:              s.Name,
			StartTime:         s.StartTime.String(),
			EndTime:           s.EndTime.String(),
			MaxBookings:       s.MaxBookings,
			CurrentBookings:   s.CurrentBookings,
			RemainingSlots:    s.RemainingSlots,
			IsAvailable:       s.IsAvailable,
			AvailabilityLevel: string(s.Level),
		}
	}

	return &AvailabilityResponse{
		Date:    resp.Date.Format(domain.DateFormat),
		StoreID: storeID,
		Slots:   slots,
	}
}
