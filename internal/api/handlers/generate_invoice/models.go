package generate_invoice

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/ledger/models"
)

// GenerateInvoiceRequest HTTP request model
type GenerateInvoiceRequest struct {
	SlotNumber int `json:"slotNumber"`
}

// InvoiceResponse HTTP response model
type InvoiceResponse struct {
	SlotNumber    int     `json:"slotNumber"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	VehicleNumber string  `json:"vehicleNumber"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	BilledHours   int64   `json:"billedHours"`
	RatePerHour   float64 `json:"ratePerHour"`
	Amount        float64 `json:"amount"`
}

// GenerateInvoiceResponse HTTP response model
type GenerateInvoiceResponse struct {
	Invoice *InvoiceResponse `json:"invoice"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(i *models.InvoiceResponse) *GenerateInvoiceResponse {
	return &GenerateInvoiceResponse{
		Invoice: &InvoiceResponse{
			SlotNumber:    i.SlotNumber,
			Name:          i.Name,
			Phone:         i.Phone,
			VehicleNumber: i.VehicleNumber,
			StartTime:     i.StartTime.Format(domain.TimeFormat),
			EndTime:       i.EndTime.Format(domain.TimeFormat),
			BilledHours:   i.BilledHours,
			RatePerHour:   i.RatePerHour,
			Amount:        i.Amount,
		},
	}
}
