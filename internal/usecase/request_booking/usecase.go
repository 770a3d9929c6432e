package request_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/domain"
	timeslotRepo "github.com/fixtrackhq/FixTrack-AppointmentService/internal/infra/storage/timeslot"
	storeClient "github.com/fixtrackhq/FixTrack-AppointmentService/internal/integrations/storeservice"
)

// UseCase is the booking admission gate: it re-derives slot occupancy at
// write time and admits the appointment only while capacity remains.
//
// The occupancy check and the insert are two separate calls, not one
// atomic unit. Two concurrent requests can both observe remaining > 0
// and both insert, pushing a slot one past its capacity. That window is
// an accepted property of the design, not a hidden bug; closing it would
// need a check-and-reserve transaction and would change observable
// behavior under race.
type UseCase struct {
	apptRepo    AppointmentRepository
	slotRepo    TimeSlotRepository
	historyRepo HistoryRepository
	storeClient StoreServiceClient
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase creates the booking admission use case.
func NewUseCase(
	apptRepo AppointmentRepository,
	slotRepo TimeSlotRepository,
	historyRepo HistoryRepository,
	storeClient StoreServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:    apptRepo,
		slotRepo:    slotRepo,
		historyRepo: historyRepo,
		storeClient: storeClient,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute admits or rejects a booking request.
// Unlike the read path, every collaborator failure here propagates: the
// customer must know when their request did not go through.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RequestBooking: customer=%d, slot=%d, date=%s",
		req.CustomerID, req.TimeSlotID, req.Date.Format(domain.DateFormat))

	// 1. Validate the request shape.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RequestBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the slot and check it is bookable.
	slot, err := uc.slotRepo.GetByID(ctx, req.TimeSlotID)
	if err != nil {
		if errors.Is(err, timeslotRepo.ErrSlotNotFound) {
			uc.logger.Warn("RequestBooking: slot id=%d not found", req.TimeSlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("RequestBooking: failed to get slot id=%d: %v", req.TimeSlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}
	if !slot.IsActive {
		uc.logger.Warn("RequestBooking: slot id=%d is inactive", req.TimeSlotID)
		return nil, ErrSlotInactive
	}

	// 3. Verify the owning store when the slot has one. StoreService
	// being down does not block the booking; only a definitive negative
	// answer does.
	if slot.StoreID != nil {
		store, err := uc.storeClient.GetStoreWithGracefulDegradation(ctx, *slot.StoreID)
		switch {
		case err == nil:
			if !store.IsActive {
				uc.logger.Warn("RequestBooking: store id=%d is inactive", *slot.StoreID)
				return nil, ErrStoreInactive
			}
		case errors.Is(err, storeClient.ErrStoreNotFound):
			uc.logger.Warn("RequestBooking: store id=%d not found", *slot.StoreID)
			return nil, ErrStoreNotFound
		case errors.Is(err, storeClient.ErrServiceDegraded):
			uc.logger.Warn("RequestBooking: proceeding without store validation for store_id=%d", *slot.StoreID)
		default:
			uc.logger.Error("RequestBooking: store lookup failed for store_id=%d: %v", *slot.StoreID, err)
			return nil, fmt.Errorf("%w: store lookup failed: %v", ErrInternal, err)
		}
	}

	// 4. Re-derive occupancy against the ledger at this moment, not from
	// whatever availability report the client fetched earlier.
	current, err := uc.apptRepo.CountActiveForSlot(ctx, req.Date, slot.ID)
	if err != nil {
		uc.logger.Error("RequestBooking: failed to count occupancy for slot id=%d: %v", slot.ID, err)
		return nil, fmt.Errorf("%w: failed to count occupancy: %v", ErrInternal, err)
	}

	maxBookings := slot.EffectiveMaxBookings()
	remaining := maxBookings - current
	if remaining <= 0 {
		uc.logger.Warn("RequestBooking: slot id=%d full, %d/%d taken", slot.ID, current, maxBookings)
		return nil, ErrSlotFull
	}

	uc.logger.Info("RequestBooking: slot id=%d has capacity, %d/%d taken", slot.ID, current, maxBookings)

	// 5. Insert the appointment together with its creation history row.
	// The transaction covers only these two writes; the capacity check
	// above stays outside it.
	appt := &domain.Appointment{
		CustomerID:    req.CustomerID,
		DeviceID:      req.DeviceID,
		TimeSlotID:    &slot.ID,
		StoreID:       slot.StoreID,
		ScheduledDate: req.Date,
		Status:        domain.StatusScheduled,
		Notes:         req.Notes,
	}

	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := uc.apptRepo.Create(txCtx, appt)
		if err != nil {
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}
		appt = created

		entry := &domain.StatusHistoryEntry{
			AppointmentID: created.ID,
			OldStatus:     nil,
			NewStatus:     domain.StatusScheduled,
			ChangedBy:     req.RequestedBy,
		}
		if err := uc.historyRepo.Add(txCtx, entry); err != nil {
			return fmt.Errorf("%w: failed to record history: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Error("RequestBooking: booking write failed for customer=%d, slot=%d: %v",
			req.CustomerID, req.TimeSlotID, err)
		return nil, err
	}

	uc.logger.Info("RequestBooking: created appointment id=%d in slot id=%d (%d/%d taken)",
		appt.ID, slot.ID, current+1, maxBookings)

	return &Response{
		ID:            appt.ID,
		CustomerID:    appt.CustomerID,
		DeviceID:      appt.DeviceID,
		TimeSlotID:    slot.ID,
		StoreID:       appt.StoreID,
		ScheduledDate: appt.ScheduledDate,
		Status:        string(appt.Status),
		Notes:         appt.Notes,
		SlotName:      slot.Name,
		SlotStartTime: slot.StartTime,
		SlotEndTime:   slot.EndTime,
		CreatedAt:     appt.CreatedAt,
	}, nil
}
