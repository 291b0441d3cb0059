package book_slot

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/ledger/models"
)

type BookingService interface {
	Book(ctx context.Context, req *models.BookRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
