package mark_occupied

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/ledger"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgSlotRequired       = "slotNumber required"
	msgInvalidSlot        = "Invalid slot"
	msgSlotNotBooked      = "Slot is not booked"
	msgMarkedOccupied     = "Marked occupied"
)

type Handler struct {
	service OccupancyService
	logger  Logger
}

func NewHandler(service OccupancyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/admin/mark-occupied
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req MarkOccupiedRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/mark-occupied - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.SlotNumber == 0 {
		handlers.RespondBadRequest(w, msgSlotRequired)
		return
	}

	if err := h.service.MarkOccupied(r.Context(), req.SlotNumber); err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidSlot):
			h.logger.Warn("POST /admin/mark-occupied - Invalid slot: slot=%d", req.SlotNumber)
			handlers.RespondNotFound(w, msgInvalidSlot)

		case errors.Is(err, ledger.ErrInvalidTransition):
			h.logger.Warn("POST /admin/mark-occupied - Slot is not booked: slot=%d", req.SlotNumber)
			handlers.RespondConflict(w, msgSlotNotBooked)

		default:
			h.logger.Error("POST /admin/mark-occupied - Failed to mark slot: slot=%d, error=%v", req.SlotNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.MessageResponse{Message: msgMarkedOccupied})
}
