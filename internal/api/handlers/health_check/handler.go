package health_check

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

const (
	pingTimeout = 2 * time.Second

	statusOK          = "ok"
	msgDatabaseFailed = "database unavailable"
)

// HealthResponse HTTP response model
type HealthResponse struct {
	Status string `json:"status"`
}

type Handler struct {
	db     Pinger
	logger Logger
}

func NewHandler(db Pinger, logger Logger) *Handler {
	return &Handler{
		db:     db,
		logger: logger,
	}
}

// Handle GET /healthz
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Error("GET /healthz - Database ping failed: %v", err)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgDatabaseFailed)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, HealthResponse{Status: statusOK})
}
