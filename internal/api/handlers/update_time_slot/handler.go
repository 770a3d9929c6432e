package update_time_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/api/handlers"
	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/service/slots"
)

const (
	msgInvalidSlotID      = "invalid slot ID"
	msgInvalidRequestBody = "invalid request body"
	msgSlotNotFound       = "time slot not found"
	msgInvalidSlot        = "invalid slot configuration"
)

type Handler struct {
	service SlotsService
	logger  Logger
}

func NewHandler(service SlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil || slotID <= 0 {
		h.logger.Warn("PUT /slots/{id} - Invalid slot ID: %s", vars["slotId"])
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req UpdateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /slots/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), slotID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrSlotNotFound):
			h.logger.Warn("PUT /slots/{id} - Slot not found: id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("PUT /slots/{id} - Invalid slot configuration: id=%d, error=%v", slotID, err)
			handlers.RespondBadRequest(w, msgInvalidSlot)
		default:
			h.logger.Error("PUT /slots/{id} - Failed to update slot: id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /slots/{id} - Slot updated: id=%d, active=%t", slotID, result.IsActive)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
