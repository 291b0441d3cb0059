package get_slots

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/ledger/models"
)

type SlotService interface {
	ListSlots(ctx context.Context) ([]*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
