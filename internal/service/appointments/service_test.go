package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/domain"
	apptRepo "github.com/fixtrackhq/FixTrack-AppointmentService/internal/infra/storage/appointment"
	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/service/appointments/models"
	"github.com/fixtrackhq/FixTrack-AppointmentService/pkg/ptr"
)

// Mock collaborators

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) ListByDate(ctx context.Context, filter domain.DateAppointmentsFilter) ([]*domain.Appointment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) ListByCustomer(ctx context.Context, customerID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	args := m.Called(ctx, customerID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockAppointmentRepository) Cancel(ctx context.Context, id int64, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}

type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) Add(ctx context.Context, entry *domain.StatusHistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockHistoryRepository) ListByAppointment(ctx context.Context, appointmentID int64) ([]*domain.StatusHistoryEntry, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.StatusHistoryEntry), args.Error(1)
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newService() (*Service, *MockAppointmentRepository, *MockHistoryRepository) {
	repo := new(MockAppointmentRepository)
	history := new(MockHistoryRepository)
	svc := NewService(repo, history, fakeTxManager{}, noopLogger{})
	return svc, repo, history
}

func scheduledAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:            1,
		CustomerID:    100,
		TimeSlotID:    ptr.Ptr(int64(5)),
		ScheduledDate: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		Status:        domain.StatusScheduled,
	}
}

func TestUpdateStatus_RecordsHistory(t *testing.T) {
	svc, repo, history := newService()

	repo.On("GetByID", mock.Anything, int64(1)).Return(scheduledAppointment(), nil)
	repo.On("UpdateStatus", mock.Anything, int64(1), domain.StatusConfirmed).Return(nil)
	history.On("Add", mock.Anything, mock.MatchedBy(func(e *domain.StatusHistoryEntry) bool {
		return e.AppointmentID == 1 &&
			e.OldStatus != nil && *e.OldStatus == domain.StatusScheduled &&
			e.NewStatus == domain.StatusConfirmed &&
			e.ChangedBy == 50
	})).Return(nil)

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		Status:    "confirmed",
		ChangedBy: 50,
	})

	assert.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	history.AssertExpectations(t)
}

func TestUpdateStatus_AllowsAnyValidTarget(t *testing.T) {
	// Enum validity is the only check: writes out of a terminal status
	// go through and stay auditable via the history trail.
	svc, repo, history := newService()

	canceled := scheduledAppointment()
	canceled.Status = domain.StatusCanceled

	repo.On("GetByID", mock.Anything, int64(1)).Return(canceled, nil)
	repo.On("UpdateStatus", mock.Anything, int64(1), domain.StatusScheduled).Return(nil)
	history.On("Add", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		Status:    "scheduled",
		ChangedBy: 50,
	})

	assert.NoError(t, err)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	svc, repo, _ := newService()

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		Status:    "pending",
		ChangedBy: 50,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc, repo, _ := newService()

	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, apptRepo.ErrAppointmentNotFound)

	_, err := svc.UpdateStatus(context.Background(), 99, &models.UpdateStatusRequest{
		Status:    "confirmed",
		ChangedBy: 50,
	})

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancel_RecordsReasonAndHistory(t *testing.T) {
	svc, repo, history := newService()

	repo.On("GetByID", mock.Anything, int64(1)).Return(scheduledAppointment(), nil)
	repo.On("Cancel", mock.Anything, int64(1), "customer request").Return(nil)
	history.On("Add", mock.Anything, mock.MatchedBy(func(e *domain.StatusHistoryEntry) bool {
		return e.NewStatus == domain.StatusCanceled && e.Note != nil && *e.Note == "customer request"
	})).Return(nil)

	err := svc.Cancel(context.Background(), 1, &models.CancelRequest{
		Reason:    "customer request",
		ChangedBy: 50,
	})

	assert.NoError(t, err)
	history.AssertExpectations(t)
}

func TestCancel_RejectsNonCancellableStatus(t *testing.T) {
	svc, repo, _ := newService()

	arrived := scheduledAppointment()
	arrived.Status = domain.StatusArrived
	repo.On("GetByID", mock.Anything, int64(1)).Return(arrived, nil)

	err := svc.Cancel(context.Background(), 1, &models.CancelRequest{Reason: "late", ChangedBy: 50})

	assert.ErrorIs(t, err, ErrCannotCancel)
	repo.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancel_WriteErrorPropagates(t *testing.T) {
	svc, repo, _ := newService()

	repo.On("GetByID", mock.Anything, int64(1)).Return(scheduledAppointment(), nil)
	repo.On("Cancel", mock.Anything, int64(1), "reason").Return(errors.New("deadlock"))

	err := svc.Cancel(context.Background(), 1, &models.CancelRequest{Reason: "reason", ChangedBy: 50})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetHistory_ResolvesAppointmentFirst(t *testing.T) {
	svc, repo, history := newService()

	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, apptRepo.ErrAppointmentNotFound)

	_, err := svc.GetHistory(context.Background(), 99)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	history.AssertNotCalled(t, "ListByAppointment", mock.Anything, mock.Anything)
}

func TestListForDate_InvalidStatusFilter(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.ListForDate(context.Background(), &models.ListForDateRequest{
		Date:   time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		Status: ptr.Ptr("unknown"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
