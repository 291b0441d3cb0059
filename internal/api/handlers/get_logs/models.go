package get_logs

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/ledger/models"
)

// LogEntryResponse HTTP response model
type LogEntryResponse struct {
	ID            string   `json:"id"`
	SlotNumber    int      `json:"slotNumber"`
	Name          string   `json:"name"`
	Phone         string   `json:"phone"`
	VehicleNumber string   `json:"vehicleNumber"`
	StartTime     string   `json:"startTime"`
	EndTime       *string  `json:"endTime"`
	Amount        *float64 `json:"amount"`
	Status        string   `json:"status"`
}

// LogsResponse HTTP response model
type LogsResponse struct {
	Logs []LogEntryResponse `json:"logs"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(entries []*models.LogEntryResponse) *LogsResponse {
	result := &LogsResponse{Logs: make([]LogEntryResponse, 0, len(entries))}
	for _, e := range entries {
		var endTime *string
		if e.EndTime != nil {
			formatted := e.EndTime.Format(domain.TimeFormat)
			endTime = &formatted
		}

		result.Logs = append(result.Logs, LogEntryResponse{
			ID:            e.ID,
			SlotNumber:    e.SlotNumber,
			Name:          e.Name,
			Phone:         e.Phone,
			VehicleNumber: e.VehicleNumber,
			StartTime:     e.StartTime.Format(domain.TimeFormat),
			EndTime:       endTime,
			Amount:        e.Amount,
			Status:        e.Status,
		})
	}
	return result
}
