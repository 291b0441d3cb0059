package generate_invoice

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/ledger"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgSlotRequired       = "slotNumber required"
	msgNoActiveBooking    = "No active booking"
)

type Handler struct {
	service InvoiceService
	logger  Logger
}

func NewHandler(service InvoiceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/admin/generate-invoice
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GenerateInvoiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/generate-invoice - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.SlotNumber == 0 {
		handlers.RespondBadRequest(w, msgSlotRequired)
		return
	}

	invoice, err := h.service.CloseAndInvoice(r.Context(), req.SlotNumber)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrNotFound):
			h.logger.Warn("POST /admin/generate-invoice - No active booking: slot=%d", req.SlotNumber)
			handlers.RespondNotFound(w, msgNoActiveBooking)

		default:
			h.logger.Error("POST /admin/generate-invoice - Failed to close slot: slot=%d, error=%v", req.SlotNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/generate-invoice - Invoice issued: slot=%d, amount=%.2f", invoice.SlotNumber, invoice.Amount)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(invoice))
}
