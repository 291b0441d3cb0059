package book_slot

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/ledger/models"
)

const msgBooked = "Booked"

// BookRequest HTTP request model
type BookRequest struct {
	SlotNumber    int    `json:"slotNumber"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	VehicleNumber string `json:"vehicleNumber"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            string `json:"id"`
	SlotNumber    int    `json:"slotNumber"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	VehicleNumber string `json:"vehicleNumber"`
	StartTime     string `json:"startTime"`
	Status        string `json:"status"`
}

// BookResponse HTTP response model
type BookResponse struct {
	Message string           `json:"message"`
	Booking *BookingResponse `json:"booking"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *BookRequest) ToServiceRequest() *models.BookRequest {
	return &models.BookRequest{
		SlotNumber:    r.SlotNumber,
		Name:          r.Name,
		Phone:         r.Phone,
		VehicleNumber: r.VehicleNumber,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(b *models.BookingResponse) *BookResponse {
	return &BookResponse{
		Message: msgBooked,
		Booking: &BookingResponse{
			ID:            b.ID,
			SlotNumber:    b.SlotNumber,
			Name:          b.Name,
			Phone:         b.Phone,
			VehicleNumber: b.VehicleNumber,
			StartTime:     b.StartTime.Format(domain.TimeFormat),
			Status:        b.Status,
		},
	}
}
