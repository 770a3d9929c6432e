package slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/domain"
	slotRepo "github.com/fixtrackhq/FixTrack-AppointmentService/internal/infra/storage/timeslot"
	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/service/slots/models"
	"github.com/fixtrackhq/FixTrack-AppointmentService/pkg/types"
)

// Service manages the store-side slot configuration. Slots are only ever
// soft-disabled; availability and booking read them through ListActive.
type Service struct {
	slotRepo TimeSlotRepository
	logger   Logger
}

// NewService creates the slots service.
func NewService(slotRepo TimeSlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// List returns a store's slots, optionally including soft-disabled ones.
func (s *Service) List(ctx context.Context, req *models.ListSlotsRequest) (*models.SlotListResponse, error) {
	list, err := s.slotRepo.List(ctx, req.StoreID, req.IncludeInactive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlotList(list), nil
}

// Create defines a new bookable slot.
func (s *Service) Create(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("Create: creating slot name=%q", req.Name)

	start, end, err := validateSlotFields(req.Name, req.StartTime, req.EndTime, req.MaxBookings)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	slot := &domain.TimeSlot{
		StoreID:     req.StoreID,
		Name:        req.Name,
		StartTime:   start,
		EndTime:     end,
		MaxBookings: req.MaxBookings,
		IsActive:    req.IsActive,
	}

	created, err := s.slotRepo.Create(ctx, slot)
	if err != nil {
		s.logger.Error("Create: repository error for slot name=%q: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created slot id=%d", created.ID)
	return models.FromDomainSlot(created), nil
}

// Update rewrites a slot's configuration.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("Update: updating slot id=%d", id)

	start, end, err := validateSlotFields(req.Name, req.StartTime, req.EndTime, req.MaxBookings)
	if err != nil {
		s.logger.Warn("Update: validation failed for slot id=%d: %v", id, err)
		return nil, err
	}

	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Update: slot id=%d not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("Update: repository error for slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	slot.Name = req.Name
	slot.StartTime = start
	slot.EndTime = end
	slot.MaxBookings = req.MaxBookings
	slot.IsActive = req.IsActive

	if err := s.slotRepo.Update(ctx, slot); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return nil, ErrSlotNotFound
		}
		s.logger.Error("Update: repository error for slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated slot id=%d (active=%t)", id, slot.IsActive)
	return models.FromDomainSlot(slot), nil
}

// validateSlotFields checks the configurable slot fields and parses the
// time window. MaxBookings of zero is allowed and means "use the
// business default".
func validateSlotFields(name, startTime, endTime string, maxBookings int) (types.TimeString, types.TimeString, error) {
	if name == "" {
		return "", "", fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxSlotNameLength {
		return "", "", fmt.Errorf("%w: name must not exceed %d characters", ErrInvalidInput, domain.MaxSlotNameLength)
	}

	start, err := types.NewTimeStringFromString(startTime)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	end, err := types.NewTimeStringFromString(endTime)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid end time: %v", ErrInvalidInput, err)
	}

	if !start.IsBefore(end) {
		return "", "", fmt.Errorf("%w: start time must be before end time", ErrInvalidInput)
	}

	if maxBookings < 0 || maxBookings > domain.MaxMaxBookings {
		return "", "", fmt.Errorf("%w: maxBookings must be between 0 and %d", ErrInvalidInput, domain.MaxMaxBookings)
	}

	return start, end, nil
}
