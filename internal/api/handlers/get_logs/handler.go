package get_logs

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

type Handler struct {
	service LogService
	logger  Logger
}

func NewHandler(service LogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/admin/logs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.ListLogs(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/logs - Failed to list logs: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(entries))
}
