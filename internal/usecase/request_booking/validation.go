package request_booking

import (
	"fmt"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/domain"
)

// validateRequest checks the request shape. Capacity and slot state are
// checked later against live data.
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.TimeSlotID <= 0 {
		return fmt.Errorf("%w: timeSlotID must be positive", ErrInvalidInput)
	}

	if req.DeviceID != nil && *req.DeviceID <= 0 {
		return fmt.Errorf("%w: deviceID must be positive when set", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
