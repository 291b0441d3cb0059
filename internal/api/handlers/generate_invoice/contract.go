package generate_invoice

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/ledger/models"
)

type InvoiceService interface {
	CloseAndInvoice(ctx context.Context, slotNumber int) (*models.InvoiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
