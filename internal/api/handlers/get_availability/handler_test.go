package get_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/domain"
	getAvailability "github.com/fixtrackhq/FixTrack-AppointmentService/internal/usecase/get_availability"
)

type stubUseCase struct {
	resp *getAvailability.Response
	err  error
	got  *getAvailability.Request
}

func (s *stubUseCase) Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	s.got = req
	return s.resp, s.err
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/stores/{storeId}/availability", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandle_ReturnsReport(t *testing.T) {
	uc := &stubUseCase{
		resp: &getAvailability.Response{
			Date: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
			Slots: []domain.SlotAvailability{
				{
					SlotID:          1,
					Name:            "Morning",
					StartTime:       "09:00",
					EndTime:         "11:00",
					MaxBookings:     3,
					CurrentBookings: 2,
					RemainingSlots:  1,
					IsAvailable:     true,
					Level:           domain.AvailabilityLimited,
				},
			},
		},
	}
	h := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stores/10/availability?date=2025-10-15", nil)
	rec := httptest.NewRecorder()
	newRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "2025-10-15", body.Date)
	assert.Equal(t, int64(10), body.StoreID)
	require.Len(t, body.Slots, 1)
	assert.Equal(t, "limited", body.Slots[0].AvailabilityLevel)
	assert.Equal(t, 1, body.Slots[0].RemainingSlots)

	require.NotNil(t, uc.got)
	assert.Equal(t, int64(10), *uc.got.StoreID)
}

func TestHandle_MissingDate(t *testing.T) {
	h := NewHandler(&stubUseCase{}, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stores/10/availability", nil)
	rec := httptest.NewRecorder()
	newRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	h := NewHandler(&stubUseCase{}, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stores/10/availability?date=15.10.2025", nil)
	rec := httptest.NewRecorder()
	newRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidStoreID(t *testing.T) {
	h := NewHandler(&stubUseCase{}, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stores/abc/availability?date=2025-10-15", nil)
	rec := httptest.NewRecorder()
	newRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
