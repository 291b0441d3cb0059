package get_slots

import "github.com/m04kA/SMC-ParkingService/internal/service/ledger/models"

// SlotResponse HTTP response model
type SlotResponse struct {
	Number           int     `json:"number"`
	Status           string  `json:"status"`
	CurrentBookingID *string `json:"currentBookingId"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(slots []*models.SlotResponse) *SlotsResponse {
	result := &SlotsResponse{Slots: make([]SlotResponse, 0, len(slots))}
	for _, s := range slots {
		result.Slots = append(result.Slots, SlotResponse{
			Number:           s.Number,
			Status:           s.Status,
			CurrentBookingID: s.CurrentBookingID,
		})
	}
	return result
}
