package request_booking

import (
	"errors"
	"net/http"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/api/handlers"
	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/api/middleware"
	requestBooking "github.com/fixtrackhq/FixTrack-AppointmentService/internal/usecase/request_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid scheduled date, expected YYYY-MM-DD"
	msgSlotFull           = "the selected time slot is fully booked"
	msgSlotNotFound       = "time slot not found"
	msgSlotInactive       = "time slot is not bookable"
	msgStoreNotFound      = "store not found"
	msgStoreInactive      = "store is not accepting bookings"
	msgInvalidInput       = "invalid booking request"
)

type Handler struct {
	useCase RequestBookingUseCase
	logger  Logger
}

func NewHandler(useCase RequestBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(middleware.UserIDFromContext(r.Context()))
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, requestBooking.ErrSlotFull):
			// Business rejection, distinct from system faults: the client
			// shows "fully booked", not "try again".
			h.logger.Warn("POST /appointments - Slot full: customer_id=%d, slot_id=%d", req.CustomerID, req.TimeSlotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotFull)

		case errors.Is(err, requestBooking.ErrSlotNotFound):
			h.logger.Warn("POST /appointments - Slot not found: slot_id=%d", req.TimeSlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, requestBooking.ErrSlotInactive):
			h.logger.Warn("POST /appointments - Slot inactive: slot_id=%d", req.TimeSlotID)
			handlers.RespondBadRequest(w, msgSlotInactive)

		case errors.Is(err, requestBooking.ErrStoreNotFound):
			h.logger.Warn("POST /appointments - Store not found: slot_id=%d", req.TimeSlotID)
			handlers.RespondNotFound(w, msgStoreNotFound)

		case errors.Is(err, requestBooking.ErrStoreInactive):
			h.logger.Warn("POST /appointments - Store inactive: slot_id=%d", req.TimeSlotID)
			handlers.RespondBadRequest(w, msgStoreInactive)

		case errors.Is(err, requestBooking.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: customer_id=%d, error=%v", req.CustomerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: customer_id=%d, slot_id=%d, error=%v",
				req.CustomerID, req.TimeSlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, customer_id=%d, slot_id=%d",
		result.ID, req.CustomerID, req.TimeSlotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
