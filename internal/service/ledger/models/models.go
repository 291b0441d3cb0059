package models

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Request модели

// BookRequest запрос на бронирование слота
type BookRequest struct {
	SlotNumber    int
	Name          string
	Phone         string
	VehicleNumber string
}

// Occupant возвращает данные владельца без пробелов по краям
func (r *BookRequest) Occupant() domain.Occupant {
	return domain.Occupant{
		Name:          r.Name,
		Phone:         r.Phone,
		VehicleNumber: r.VehicleNumber,
	}.Normalize()
}

// Response модели

// SlotResponse состояние слота
type SlotResponse struct {
	Number           int
	Status           string
	CurrentBookingID *string
}

// BookingResponse созданное бронирование
type BookingResponse struct {
	ID            string
	SlotNumber    int
	Name          string
	Phone         string
	VehicleNumber string
	StartTime     time.Time
	Status        string
}

// LogEntryResponse запись журнала
type LogEntryResponse struct {
	ID            string
	SlotNumber    int
	Name          string
	Phone         string
	VehicleNumber string
	StartTime     time.Time
	EndTime       *time.Time
	Amount        *float64
	Status        string
}

// InvoiceResponse счёт за парковку
type InvoiceResponse struct {
	SlotNumber    int
	Name          string
	Phone         string
	VehicleNumber string
	StartTime     time.Time
	EndTime       time.Time
	BilledHours   int64
	RatePerHour   float64
	Amount        float64
}

// FromDomainSlot конвертирует domain модель слота
func FromDomainSlot(s *domain.Slot) *SlotResponse {
	return &SlotResponse{
		Number:           s.Number,
		Status:           string(s.Status),
		CurrentBookingID: s.CurrentBookingID,
	}
}

// FromDomainSlotList конвертирует список слотов
func FromDomainSlotList(slots []*domain.Slot) []*SlotResponse {
	result := make([]*SlotResponse, 0, len(slots))
	for _, s := range slots {
		result = append(result, FromDomainSlot(s))
	}
	return result
}

// FromDomainBooking конвертирует domain модель бронирования
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		SlotNumber:    b.SlotNumber,
		Name:          b.Name,
		Phone:         b.Phone,
		VehicleNumber: b.VehicleNumber,
		StartTime:     b.StartTime,
		Status:        string(b.Status),
	}
}

// FromDomainLogEntry конвертирует запись журнала
func FromDomainLogEntry(e *domain.LogEntry) *LogEntryResponse {
	return &LogEntryResponse{
		ID:            e.ID,
		SlotNumber:    e.SlotNumber,
		Name:          e.Name,
		Phone:         e.Phone,
		VehicleNumber: e.VehicleNumber,
		StartTime:     e.StartTime,
		EndTime:       e.EndTime,
		Amount:        e.Amount,
		Status:        string(e.Status),
	}
}

// FromDomainLogList конвертирует журнал
func FromDomainLogList(entries []*domain.LogEntry) []*LogEntryResponse {
	result := make([]*LogEntryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, FromDomainLogEntry(e))
	}
	return result
}

// FromDomainInvoice конвертирует счёт
func FromDomainInvoice(i *domain.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		SlotNumber:    i.SlotNumber,
		Name:          i.Name,
		Phone:         i.Phone,
		VehicleNumber: i.VehicleNumber,
		StartTime:     i.StartTime,
		EndTime:       i.EndTime,
		BilledHours:   i.BilledHours,
		RatePerHour:   i.RatePerHour,
		Amount:        i.Amount,
	}
}
