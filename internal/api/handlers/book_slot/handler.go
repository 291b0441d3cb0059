package book_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/ledger"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingFields      = "Missing fields"
	msgInvalidSlot        = "Invalid slot"
	msgSlotNotAvailable   = "Slot not available"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.SlotNumber == 0 {
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	booking, err := h.service.Book(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrValidation):
			h.logger.Warn("POST /book - Validation failed: slot=%d, error=%v", req.SlotNumber, err)
			if err == ledger.ErrValidation {
				handlers.RespondBadRequest(w, msgMissingFields)
			} else {
				handlers.RespondBadRequest(w, err.Error())
			}

		case errors.Is(err, ledger.ErrInvalidSlot):
			h.logger.Warn("POST /book - Invalid slot: slot=%d", req.SlotNumber)
			handlers.RespondNotFound(w, msgInvalidSlot)

		case errors.Is(err, ledger.ErrSlotUnavailable):
			h.logger.Warn("POST /book - Slot not available: slot=%d", req.SlotNumber)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /book - Failed to book slot: slot=%d, error=%v", req.SlotNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /book - Slot booked: slot=%d, booking_id=%s", booking.SlotNumber, booking.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(booking))
}
