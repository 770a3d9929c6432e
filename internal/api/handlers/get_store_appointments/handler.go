package get_store_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/api/handlers"
	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/domain"
	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/service/appointments"
	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/service/appointments/models"
)

const (
	msgInvalidStoreID = "invalid store ID"
	msgMissingDate    = "date query parameter is required"
	msgInvalidDate    = "invalid date, expected YYYY-MM-DD"
	msgInvalidStatus  = "invalid status filter"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/stores/{storeId}/appointments?date=&status=&includeTerminal=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	storeID, err := strconv.ParseInt(vars["storeId"], 10, 64)
	if err != nil || storeID <= 0 {
		h.logger.Warn("GET /stores/{id}/appointments - Invalid store ID: %s", vars["storeId"])
		handlers.RespondBadRequest(w, msgInvalidStoreID)
		return
	}

	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /stores/{id}/appointments - Invalid date: %s", rawDate)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &models.ListForDateRequest{
		Date:            date,
		StoreID:         &storeID,
		IncludeTerminal: r.URL.Query().Get("includeTerminal") == "true",
	}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.ListForDate(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /stores/{id}/appointments - Invalid status filter: store_id=%d", storeID)
			handlers.RespondBadRequest(w, msgInvalidStatus)
		default:
			h.logger.Error("GET /stores/{id}/appointments - Failed to fetch appointments: store_id=%d, date=%s, error=%v",
				storeID, rawDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(storeID, date, result))
}
