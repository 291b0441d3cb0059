package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	logRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/parkinglog"
	slotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-ParkingService/internal/service/ledger/models"
)

// Service - единственное место, где меняется состояние слотов.
// Источник истины - хранилище: каждая операция перечитывает состояние внутри транзакции,
// блокируя строку слота.
type Service struct {
	slotRepo     SlotRepository
	bookingRepo  BookingRepository
	logRepo      LogRepository
	txManager    TransactionManager
	tariff       domain.Tariff
	timeProvider TimeProvider
	recorder     Recorder
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	logRepo LogRepository,
	txManager TransactionManager,
	tariff domain.Tariff,
	recorder Recorder,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:     slotRepo,
		bookingRepo:  bookingRepo,
		logRepo:      logRepo,
		txManager:    txManager,
		tariff:       tariff,
		timeProvider: &RealTimeProvider{},
		recorder:     recorder,
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// EnsureSlots создаёт слоты 1..capacity, если хранилище пустое
func (s *Service) EnsureSlots(ctx context.Context, capacity int) error {
	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		count, err := s.slotRepo.Count(txCtx)
		if err != nil {
			return fmt.Errorf("%w: EnsureSlots - count slots: %v", ErrInternal, err)
		}

		if count > 0 {
			if count != capacity {
				s.logger.Warn("EnsureSlots: store already has %d slots, configured capacity=%d is ignored", count, capacity)
			}
			return nil
		}

		if err := s.slotRepo.Seed(txCtx, capacity); err != nil {
			return fmt.Errorf("%w: EnsureSlots - seed slots: %v", ErrInternal, err)
		}

		s.logger.Info("EnsureSlots: created %d empty slots", capacity)
		return nil
	})
}

// ListSlots возвращает все слоты по возрастанию номера
func (s *Service) ListSlots(ctx context.Context) ([]*models.SlotResponse, error) {
	var slots []*domain.Slot
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		slots, err = s.slotRepo.List(txCtx)
		return err
	})
	if err != nil {
		s.logger.Error("ListSlots: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSlots - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlotList(slots), nil
}

// ListLogs возвращает журнал, начиная с последних сессий
func (s *Service) ListLogs(ctx context.Context) ([]*models.LogEntryResponse, error) {
	var entries []*domain.LogEntry
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		entries, err = s.logRepo.List(txCtx)
		return err
	})
	if err != nil {
		s.logger.Error("ListLogs: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListLogs - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainLogList(entries), nil
}

// Book бронирует пустой слот.
// Бронирование, запись журнала и статус слота сохраняются в одной транзакции.
func (s *Service) Book(ctx context.Context, req *models.BookRequest) (*models.BookingResponse, error) {
	occupant := req.Occupant()
	if err := validateOccupant(occupant); err != nil {
		s.logger.Warn("Book: validation failed for slot=%d: %v", req.SlotNumber, err)
		return nil, err
	}

	if req.SlotNumber <= 0 {
		return nil, ErrInvalidSlot
	}

	booking := &domain.Booking{
		ID:         uuid.NewString(),
		SlotNumber: req.SlotNumber,
		Occupant:   occupant,
		StartTime:  s.now(),
		Status:     domain.BookingBooked,
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		slot, err := s.lockSlot(txCtx, req.SlotNumber, "Book")
		if err != nil {
			return err
		}

		if !slot.IsAvailable() {
			s.logger.Warn("Book: slot=%d is %s", slot.Number, slot.Status)
			return ErrSlotUnavailable
		}

		if err := s.bookingRepo.Create(txCtx, booking); err != nil {
			if errors.Is(err, bookingRepo.ErrSlotAlreadyBooked) {
				s.logger.Warn("Book: slot=%d already has a live booking", slot.Number)
				return ErrSlotUnavailable
			}
			return fmt.Errorf("%w: Book - create booking: %v", ErrInternal, err)
		}

		if err := s.logRepo.Create(txCtx, domain.NewLogEntry(booking)); err != nil {
			return fmt.Errorf("%w: Book - create log entry: %v", ErrInternal, err)
		}

		slot.MarkBooked(booking.ID)
		if err := s.slotRepo.UpdateState(txCtx, slot); err != nil {
			return fmt.Errorf("%w: Book - update slot: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		s.logIfInternal("Book", req.SlotNumber, err)
		return nil, err
	}

	s.recorder.BookingCreated()
	s.logger.Info("Book: slot=%d booked, booking_id=%s", booking.SlotNumber, booking.ID)

	return models.FromDomainBooking(booking), nil
}

// MarkOccupied отмечает, что автомобиль занял забронированный слот
func (s *Service) MarkOccupied(ctx context.Context, slotNumber int) error {
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		slot, err := s.lockSlot(txCtx, slotNumber, "MarkOccupied")
		if err != nil {
			return err
		}

		if !slot.CanBeOccupied() {
			s.logger.Warn("MarkOccupied: slot=%d is %s, expected booked", slot.Number, slot.Status)
			return ErrInvalidTransition
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, slotNumber, domain.BookingOccupied); err != nil {
			return fmt.Errorf("%w: MarkOccupied - update booking: %v", ErrInternal, err)
		}

		slot.MarkOccupied()
		if err := s.slotRepo.UpdateState(txCtx, slot); err != nil {
			return fmt.Errorf("%w: MarkOccupied - update slot: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		s.logIfInternal("MarkOccupied", slotNumber, err)
		return err
	}

	s.logger.Info("MarkOccupied: slot=%d occupied", slotNumber)
	return nil
}

// CloseAndInvoice закрывает бронирование слота и выставляет счёт
func (s *Service) CloseAndInvoice(ctx context.Context, slotNumber int) (*models.InvoiceResponse, error) {
	var invoice *domain.Invoice

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		slot, err := s.slotRepo.GetByNumber(txCtx, slotNumber)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("%w: CloseAndInvoice - get slot: %v", ErrInternal, err)
		}

		booking, err := s.bookingRepo.GetBySlot(txCtx, slotNumber)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("CloseAndInvoice: slot=%d has no live booking", slotNumber)
				return ErrNotFound
			}
			return fmt.Errorf("%w: CloseAndInvoice - get booking: %v", ErrInternal, err)
		}

		invoice = s.tariff.Invoice(booking, s.now())

		if err := s.finalizeLog(txCtx, booking, invoice.EndTime, invoice.Amount, domain.LogCompleted); err != nil {
			return err
		}

		if err := s.bookingRepo.DeleteBySlot(txCtx, slotNumber); err != nil {
			return fmt.Errorf("%w: CloseAndInvoice - delete booking: %v", ErrInternal, err)
		}

		slot.Release()
		if err := s.slotRepo.UpdateState(txCtx, slot); err != nil {
			return fmt.Errorf("%w: CloseAndInvoice - update slot: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		s.logIfInternal("CloseAndInvoice", slotNumber, err)
		return nil, err
	}

	s.recorder.InvoiceIssued(invoice.Amount)
	s.logger.Info("CloseAndInvoice: slot=%d closed, billed_hours=%d, amount=%.2f",
		slotNumber, invoice.BilledHours, invoice.Amount)

	return models.FromDomainInvoice(invoice), nil
}

// Reset принудительно освобождает слот без выставления счёта.
// Активная запись журнала закрывается со статусом cancelled и нулевой суммой.
func (s *Service) Reset(ctx context.Context, slotNumber int) error {
	var changed bool

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		slot, err := s.lockSlot(txCtx, slotNumber, "Reset")
		if err != nil {
			return err
		}

		booking, err := s.bookingRepo.GetBySlot(txCtx, slotNumber)
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			// Слот уже пуст
		case err != nil:
			return fmt.Errorf("%w: Reset - get booking: %v", ErrInternal, err)
		default:
			if err := s.finalizeLog(txCtx, booking, s.now(), 0, domain.LogCancelled); err != nil {
				return err
			}
			if err := s.bookingRepo.DeleteBySlot(txCtx, slotNumber); err != nil {
				return fmt.Errorf("%w: Reset - delete booking: %v", ErrInternal, err)
			}
			changed = true
		}

		if slot.IsAvailable() && slot.IsConsistent() {
			return nil
		}

		slot.Release()
		if err := s.slotRepo.UpdateState(txCtx, slot); err != nil {
			return fmt.Errorf("%w: Reset - update slot: %v", ErrInternal, err)
		}
		changed = true

		return nil
	})
	if err != nil {
		s.logIfInternal("Reset", slotNumber, err)
		return err
	}

	if !changed {
		s.logger.Info("Reset: slot=%d already empty", slotNumber)
		return nil
	}

	s.recorder.SlotReset()
	s.logger.Info("Reset: slot=%d reset", slotNumber)
	return nil
}

// lockSlot читает слот внутри транзакции (с блокировкой строки)
func (s *Service) lockSlot(ctx context.Context, number int, op string) (*domain.Slot, error) {
	slot, err := s.slotRepo.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("%s: slot=%d does not exist", op, number)
			return nil, ErrInvalidSlot
		}
		return nil, fmt.Errorf("%w: %s - get slot: %v", ErrInternal, op, err)
	}
	return slot, nil
}

// finalizeLog закрывает активную запись журнала бронирования.
// Отсутствие активной записи не блокирует освобождение слота.
func (s *Service) finalizeLog(
	ctx context.Context,
	booking *domain.Booking,
	endTime time.Time,
	amount float64,
	status domain.LogStatus,
) error {
	err := s.logRepo.FinalizeActive(ctx, booking.SlotNumber, booking.StartTime, endTime, amount, status)
	if errors.Is(err, logRepo.ErrActiveEntryNotFound) {
		s.logger.Warn("finalizeLog: no active log entry for slot=%d, booking_id=%s", booking.SlotNumber, booking.ID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: finalize log entry: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) logIfInternal(op string, slotNumber int, err error) {
	if errors.Is(err, ErrInternal) {
		s.logger.Error("%s: slot=%d: %v", op, slotNumber, err)
	}
}

// now возвращает текущее время в UTC с точностью хранилища (микросекунды)
func (s *Service) now() time.Time {
	return s.timeProvider.Now().UTC().Truncate(time.Microsecond)
}

func validateOccupant(o domain.Occupant) error {
	if !o.IsComplete() {
		return ErrValidation
	}
	if utf8.RuneCountInString(o.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is longer than %d characters", ErrValidation, domain.MaxNameLength)
	}
	if utf8.RuneCountInString(o.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is longer than %d characters", ErrValidation, domain.MaxPhoneLength)
	}
	if utf8.RuneCountInString(o.VehicleNumber) > domain.MaxVehicleNumberLength {
		return fmt.Errorf("%w: vehicle number is longer than %d characters", ErrValidation, domain.MaxVehicleNumberLength)
	}
	return nil
}
