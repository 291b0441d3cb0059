package reset_slot

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
	msgSlotReset          = "Slot reset"
)

type Handler struct {
	service ResetService
	logger  Logger
}

func NewHandler(service ResetService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/admin/reset-slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ResetSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/reset-slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.SlotNumber == 0 {
		handlers.RespondBadRequest(w, msgSlotRequired)
		return
	}

	if err := h.service.Reset(r.Context(), req.SlotNumber); err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidSlot):
			h.logger.Warn("POST /admin/reset-slot - Invalid slot: slot=%d", req.SlotNumber)
			handlers.RespondNotFound(w, msgInvalidSlot)

		default:
			h.logger.Error("POST /admin/reset-slot - Failed to reset slot: slot=%d, error=%v", req.SlotNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.MessageResponse{Message: msgSlotReset})
}
