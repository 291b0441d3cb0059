package get_logs

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/ledger/models"
)

type LogService interface {
	ListLogs(ctx context.Context) ([]*models.LogEntryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
