package create_time_slot

import (
	"errors"
	"net/http"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/api/handlers"
	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/service/slots"
)

const (
	msgInvalidRequestBody = "invalid request body"
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

// Handle POST /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("POST /slots - Invalid slot configuration: name=%q, error=%v", req.Name, err)
			handlers.RespondBadRequest(w, msgInvalidSlot)
		default:
			h.logger.Error("POST /slots - Failed to create slot: name=%q, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots - Slot created: id=%d, name=%q", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
