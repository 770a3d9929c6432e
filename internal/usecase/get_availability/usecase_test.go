package get_availability

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/domain"
	"github.com/fixtrackhq/FixTrack-AppointmentService/pkg/ptr"
)

// Mock repositories

type MockTimeSlotRepository struct {
	mock.Mock
}

func (m *MockTimeSlotRepository) ListActive(ctx context.Context, storeID *int64) ([]*domain.TimeSlot, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TimeSlot), args.Error(1)
}

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) ListByDate(ctx context.Context, filter domain.DateAppointmentsFilter) ([]*domain.Appointment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Appointment), args.Error(1)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func testDate() time.Time {
	return time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
}

func testSlots() []*domain.TimeSlot {
	return []*domain.TimeSlot{
		{ID: 1, Name: "Morning", StartTime: "09:00", EndTime: "11:00", MaxBookings: 3, IsActive: true},
		{ID: 2, Name: "Midday", StartTime: "11:00", EndTime: "13:00", MaxBookings: 2, IsActive: true},
	}
}

func TestExecute_ReportsPerSlotOccupancy(t *testing.T) {
	slotRepo := new(MockTimeSlotRepository)
	apptRepo := new(MockAppointmentRepository)
	uc := NewUseCase(slotRepo, apptRepo, noopLogger{})

	storeID := ptr.Ptr(int64(10))
	slotRepo.On("ListActive", mock.Anything, storeID).Return(testSlots(), nil)
	apptRepo.On("ListByDate", mock.Anything, mock.MatchedBy(func(f domain.DateAppointmentsFilter) bool {
		// The whole ledger is read; terminal rows are filtered in memory.
		return f.IncludeTerminal && f.Date.Equal(testDate())
	})).Return([]*domain.Appointment{
		{TimeSlotID: ptr.Ptr(int64(1)), Status: domain.StatusScheduled},
		{TimeSlotID: ptr.Ptr(int64(1)), Status: domain.StatusConfirmed},
		{TimeSlotID: ptr.Ptr(int64(1)), Status: domain.StatusCanceled},
		{TimeSlotID: ptr.Ptr(int64(2)), Status: domain.StatusArrived},
	}, nil)

	resp, err := uc.Execute(context.Background(), &Request{StoreID: storeID, Date: testDate()})

	assert.NoError(t, err)
	assert.Len(t, resp.Slots, 2)

	assert.Equal(t, 2, resp.Slots[0].CurrentBookings)
	assert.Equal(t, 1, resp.Slots[0].RemainingSlots)
	assert.Equal(t, domain.AvailabilityLimited, resp.Slots[0].Level)

	assert.Equal(t, 1, resp.Slots[1].CurrentBookings)
	assert.Equal(t, 1, resp.Slots[1].RemainingSlots)

	slotRepo.AssertExpectations(t)
	apptRepo.AssertExpectations(t)
}

func TestExecute_CancellationFreesCapacity(t *testing.T) {
	slotRepo := new(MockTimeSlotRepository)
	apptRepo := new(MockAppointmentRepository)
	uc := NewUseCase(slotRepo, apptRepo, noopLogger{})

	slots := []*domain.TimeSlot{
		{ID: 1, Name: "Morning", StartTime: "09:00", EndTime: "11:00", MaxBookings: 2, IsActive: true},
	}
	slotRepo.On("ListActive", mock.Anything, (*int64)(nil)).Return(slots, nil)

	// First read: slot at capacity.
	apptRepo.On("ListByDate", mock.Anything, mock.Anything).Return([]*domain.Appointment{
		{ID: 1, TimeSlotID: ptr.Ptr(int64(1)), Status: domain.StatusScheduled},
		{ID: 2, TimeSlotID: ptr.Ptr(int64(1)), Status: domain.StatusScheduled},
	}, nil).Once()

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate()})
	assert.NoError(t, err)
	assert.Equal(t, domain.AvailabilityFull, resp.Slots[0].Level)

	// Second read: one appointment has since been canceled.
	apptRepo.On("ListByDate", mock.Anything, mock.Anything).Return([]*domain.Appointment{
		{ID: 1, TimeSlotID: ptr.Ptr(int64(1)), Status: domain.StatusScheduled},
		{ID: 2, TimeSlotID: ptr.Ptr(int64(1)), Status: domain.StatusCanceled},
	}, nil).Once()

	resp, err = uc.Execute(context.Background(), &Request{Date: testDate()})
	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Slots[0].RemainingSlots)
	assert.True(t, resp.Slots[0].IsAvailable)
}

func TestExecute_SlotFetchFailureDegradesToEmptyReport(t *testing.T) {
	slotRepo := new(MockTimeSlotRepository)
	apptRepo := new(MockAppointmentRepository)
	uc := NewUseCase(slotRepo, apptRepo, noopLogger{})

	slotRepo.On("ListActive", mock.Anything, (*int64)(nil)).Return(nil, errors.New("connection refused"))

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate()})

	assert.NoError(t, err)
	assert.Empty(t, resp.Slots)
	apptRepo.AssertNotCalled(t, "ListByDate", mock.Anything, mock.Anything)
}

func TestExecute_AppointmentFetchFailureDegradesToOptimisticReport(t *testing.T) {
	slotRepo := new(MockTimeSlotRepository)
	apptRepo := new(MockAppointmentRepository)
	uc := NewUseCase(slotRepo, apptRepo, noopLogger{})

	slotRepo.On("ListActive", mock.Anything, (*int64)(nil)).Return(testSlots(), nil)
	apptRepo.On("ListByDate", mock.Anything, mock.Anything).Return(nil, errors.New("query timeout"))

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate()})

	assert.NoError(t, err)
	assert.Len(t, resp.Slots, 2)
	for _, report := range resp.Slots {
		assert.Equal(t, 0, report.CurrentBookings)
		assert.True(t, report.IsAvailable)
	}
}

func TestExecute_NoActiveSlots(t *testing.T) {
	slotRepo := new(MockTimeSlotRepository)
	apptRepo := new(MockAppointmentRepository)
	uc := NewUseCase(slotRepo, apptRepo, noopLogger{})

	slotRepo.On("ListActive", mock.Anything, (*int64)(nil)).Return([]*domain.TimeSlot{}, nil)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate()})

	assert.NoError(t, err)
	assert.Empty(t, resp.Slots)
	apptRepo.AssertNotCalled(t, "ListByDate", mock.Anything, mock.Anything)
}

// recordingLogger captures formatted log lines for assertions.
type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) logf(format string, v ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Info(format string, v ...interface{})  { l.logf(format, v...) }
func (l *recordingLogger) Warn(format string, v ...interface{})  { l.logf(format, v...) }
func (l *recordingLogger) Error(format string, v ...interface{}) { l.logf(format, v...) }

func TestExecute_MissingDate(t *testing.T) {
	slotRepo := new(MockTimeSlotRepository)
	apptRepo := new(MockAppointmentRepository)
	log := &recordingLogger{}
	uc := NewUseCase(slotRepo, apptRepo, log)

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInvalidInput)

	// A rejected request must not log the formatted zero date.
	for _, line := range log.lines {
		assert.NotContains(t, line, "0001-01-01")
	}
}
