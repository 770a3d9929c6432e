package request_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	requestBooking "github.com/fixtrackhq/FixTrack-AppointmentService/internal/usecase/request_booking"
)

type stubUseCase struct {
	resp *requestBooking.Response
	err  error
	got  *requestBooking.Request
}

func (s *stubUseCase) Execute(ctx context.Context, req *requestBooking.Request) (*requestBooking.Response, error) {
	s.got = req
	return s.resp, s.err
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

const validBody = `{"customerId":100,"timeSlotId":1,"scheduledDate":"2025-10-15"}`

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{
		resp: &requestBooking.Response{
			ID:            42,
			CustomerID:    100,
			TimeSlotID:    1,
			ScheduledDate: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
			Status:        "scheduled",
			SlotName:      "Morning",
			SlotStartTime: "09:00",
			SlotEndTime:   "11:00",
		},
	}
	h := NewHandler(uc, noopLogger{})

	rec := post(h, validBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(100), uc.got.CustomerID)
	assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), uc.got.Date)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "slot full is a conflict", err: requestBooking.ErrSlotFull, want: http.StatusConflict},
		{name: "slot not found", err: requestBooking.ErrSlotNotFound, want: http.StatusNotFound},
		{name: "slot inactive", err: requestBooking.ErrSlotInactive, want: http.StatusBadRequest},
		{name: "store not found", err: requestBooking.ErrStoreNotFound, want: http.StatusNotFound},
		{name: "store inactive", err: requestBooking.ErrStoreInactive, want: http.StatusBadRequest},
		{name: "invalid input", err: requestBooking.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "internal error", err: requestBooking.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, noopLogger{})

			rec := post(h, validBody)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandle_MalformedBody(t *testing.T) {
	h := NewHandler(&stubUseCase{}, noopLogger{})

	assert.Equal(t, http.StatusBadRequest, post(h, `{"customerId":`).Code)
	assert.Equal(t, http.StatusBadRequest, post(h, `{"unknownField":1}`).Code)
}

func TestHandle_BadDate(t *testing.T) {
	h := NewHandler(&stubUseCase{}, noopLogger{})

	rec := post(h, `{"customerId":100,"timeSlotId":1,"scheduledDate":"15.10.2025"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
