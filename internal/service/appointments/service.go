package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/domain"
	apptRepo "github.com/fixtrackhq/FixTrack-AppointmentService/internal/infra/storage/appointment"
	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/service/appointments/models"
)

// Service handles the staff-facing appointment operations: lookups,
// status overwrites, cancellation and the status audit trail. The
// customer booking path goes through the admission gate use case instead.
type Service struct {
	apptRepo    AppointmentRepository
	historyRepo HistoryRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService creates the appointments service.
func NewService(
	apptRepo AppointmentRepository,
	historyRepo HistoryRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		apptRepo:    apptRepo,
		historyRepo: historyRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID returns a single appointment.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// ListForDate returns a day's appointments for staff views. Every status
// is included when IncludeTerminal is set; consumers choose their own
// exclusion set.
func (s *Service) ListForDate(ctx context.Context, req *models.ListForDateRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListForDate: fetching appointments for date=%s", req.Date.Format(domain.DateFormat))

	filter := domain.DateAppointmentsFilter{
		Date:            req.Date,
		StoreID:         req.StoreID,
		IncludeTerminal: req.IncludeTerminal,
	}

	if req.Status != nil {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("ListForDate: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	list, err := s.apptRepo.ListByDate(ctx, filter)
	if err != nil {
		s.logger.Error("ListForDate: repository error for date=%s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: ListForDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForDate: fetched %d appointments for date=%s", len(list), req.Date.Format(domain.DateFormat))
	return models.FromDomainAppointmentList(list), nil
}

// ListByCustomer returns a customer's appointment history.
func (s *Service) ListByCustomer(ctx context.Context, req *models.ListByCustomerRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListByCustomer: fetching appointments for customer=%d", req.CustomerID)

	var domainStatus *domain.AppointmentStatus
	if req.Status != nil {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("ListByCustomer: invalid status=%s for customer=%d", *req.Status, req.CustomerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	list, err := s.apptRepo.ListByCustomer(ctx, req.CustomerID, domainStatus)
	if err != nil {
		s.logger.Error("ListByCustomer: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: ListByCustomer - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByCustomer: fetched %d appointments for customer=%d", len(list), req.CustomerID)
	return models.FromDomainAppointmentList(list), nil
}

// UpdateStatus overwrites an appointment's status and records the change.
// Only enum validity is checked: any known status may replace any other,
// including writes out of a terminal status. The history row makes such
// overwrites auditable after the fact.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s by user=%d", id, req.Status, req.ChangedBy)

	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	oldStatus := appt.Status

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.apptRepo.UpdateStatus(txCtx, id, newStatus); err != nil {
			return err
		}
		return s.historyRepo.Add(txCtx, &domain.StatusHistoryEntry{
			AppointmentID: id,
			OldStatus:     &oldStatus,
			NewStatus:     newStatus,
			ChangedBy:     req.ChangedBy,
			Note:          req.Note,
		})
	})
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: failed to update appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - write error: %v", ErrInternal, err)
	}

	appt.Status = newStatus

	s.logger.Info("UpdateStatus: appointment id=%d moved %s -> %s", id, oldStatus, newStatus)
	return models.FromDomainAppointment(appt), nil
}

// Cancel cancels an appointment with a reason, freeing its slot capacity
// unit on the next availability computation.
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d by user=%d", id, req.ChangedBy)

	if len(req.Reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", id, appt.Status)
		return ErrCannotCancel
	}

	oldStatus := appt.Status

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.apptRepo.Cancel(txCtx, id, req.Reason); err != nil {
			return err
		}
		return s.historyRepo.Add(txCtx, &domain.StatusHistoryEntry{
			AppointmentID: id,
			OldStatus:     &oldStatus,
			NewStatus:     domain.StatusCanceled,
			ChangedBy:     req.ChangedBy,
			Note:          &req.Reason,
		})
	})
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: failed to cancel appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - write error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: appointment id=%d cancelled", id)
	return nil
}

// GetHistory returns an appointment's status trail, oldest first.
func (s *Service) GetHistory(ctx context.Context, id int64) ([]*models.HistoryEntryResponse, error) {
	s.logger.Info("GetHistory: fetching history for appointment id=%d", id)

	// Resolve the appointment first so a missing ID is reported as such
	// rather than as an empty trail.
	if _, err := s.apptRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("%w: GetHistory - repository error: %v", ErrInternal, err)
	}

	entries, err := s.historyRepo.ListByAppointment(ctx, id)
	if err != nil {
		s.logger.Error("GetHistory: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetHistory - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHistory(entries), nil
}
