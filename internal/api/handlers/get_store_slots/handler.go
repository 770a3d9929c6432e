package get_store_slots

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/api/handlers"
	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/service/slots/models"
)

const (
	msgInvalidStoreID = "invalid store ID"
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

// Handle GET /api/v1/stores/{storeId}/slots?includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	storeID, err := strconv.ParseInt(vars["storeId"], 10, 64)
	if err != nil || storeID <= 0 {
		h.logger.Warn("GET /stores/{id}/slots - Invalid store ID: %s", vars["storeId"])
		handlers.RespondBadRequest(w, msgInvalidStoreID)
		return
	}

	req := &models.ListSlotsRequest{
		StoreID:         &storeID,
		IncludeInactive: r.URL.Query().Get("includeInactive") == "true",
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /stores/{id}/slots - Failed to fetch slots: store_id=%d, error=%v", storeID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(storeID, result))
}
