package get_availability

import (
	"context"
	"fmt"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/domain"
)

// UseCase computes the per-slot availability report for a date. It owns
// no state: every call re-reads the registry and the ledger, so the
// report is always consistent with the ledger at read time.
type UseCase struct {
	slotRepo TimeSlotRepository
	apptRepo AppointmentRepository
	logger   Logger
}

// NewUseCase creates the availability use case.
func NewUseCase(slotRepo TimeSlotRepository, apptRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo: slotRepo,
		apptRepo: apptRepo,
		logger:   logger,
	}
}

// Execute runs the availability computation.
//
// Read-path failures never surface to the caller: a failed slot fetch
// degrades to "nothing bookable" (empty report), and a failed
// appointment fetch degrades to an optimistic report where every active
// slot shows zero bookings. Showing optimistic availability beats
// blocking the booking UI on a transient read failure; the admission
// gate re-checks at write time anyway.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailability: missing date")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	uc.logger.Info("GetAvailability: store=%v, date=%s", formatStoreID(req.StoreID), req.Date.Format(domain.DateFormat))

	// 1. Active slots. On fetch failure, degrade to an empty report.
	slots, err := uc.slotRepo.ListActive(ctx, req.StoreID)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list active slots, degrading to empty report: %v", err)
		return uc.emptyResponse(req), nil
	}
	if len(slots) == 0 {
		uc.logger.Info("GetAvailability: no active slots for store=%v", formatStoreID(req.StoreID))
		return uc.emptyResponse(req), nil
	}

	// 2. The full day's ledger, every status; filtering happens in memory.
	appointments, err := uc.apptRepo.ListByDate(ctx, domain.DateAppointmentsFilter{
		Date:            req.Date,
		StoreID:         req.StoreID,
		IncludeTerminal: true,
	})
	if err != nil {
		// Optimistic fallback: every slot reported fully available.
		uc.logger.Error("GetAvailability: failed to list appointments, degrading to optimistic report: %v", err)
		return &Response{
			Date:    req.Date,
			StoreID: req.StoreID,
			Slots:   buildReports(slots, nil),
		}, nil
	}

	// 3-8. Count occupancy per slot and derive one report per active slot.
	reports := buildReports(slots, countBookingsBySlot(appointments))

	uc.logger.Info("GetAvailability: %d slots reported for store=%v, date=%s",
		len(reports), formatStoreID(req.StoreID), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:    req.Date,
		StoreID: req.StoreID,
		Slots:   reports,
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request) *Response {
	return &Response{
		Date:    req.Date,
		StoreID: req.StoreID,
		Slots:   []domain.SlotAvailability{},
	}
}

func formatStoreID(storeID *int64) interface{} {
	if storeID == nil {
		return "all"
	}
	return *storeID
}
