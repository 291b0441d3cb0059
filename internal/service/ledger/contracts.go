package ledger

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByNumber(ctx context.Context, number int) (*domain.Slot, error)
	List(ctx context.Context) ([]*domain.Slot, error)
	UpdateState(ctx context.Context, slot *domain.Slot) error
	Count(ctx context.Context) (int, error)
	Seed(ctx context.Context, count int) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetBySlot(ctx context.Context, slotNumber int) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, slotNumber int, status domain.BookingStatus) error
	DeleteBySlot(ctx context.Context, slotNumber int) error
}

// LogRepository интерфейс журнала парковочных сессий
type LogRepository interface {
	Create(ctx context.Context, entry *domain.LogEntry) error
	FinalizeActive(ctx context.Context, slotNumber int, startTime, endTime time.Time, amount float64, status domain.LogStatus) error
	List(ctx context.Context) ([]*domain.LogEntry, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Recorder получает события для метрик
type Recorder interface {
	BookingCreated()
	InvoiceIssued(amount float64)
	SlotReset()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
