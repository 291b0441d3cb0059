package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

const (
	table = "parking_bookings"

	// uniqueViolation SQLSTATE 23505
	uniqueViolation = "23505"
)

var columns = []string{
	"id",
	"slot_number",
	"name",
	"phone",
	"vehicle_number",
	"start_time",
	"status",
}

// Repository репозиторий активных бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование.
// Уникальный индекс по slot_number гарантирует не более одного бронирования на слот:
// при конкурентной вставке вторая транзакция получает ErrSlotAlreadyBooked.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns...).
		Values(
			booking.ID,
			booking.SlotNumber,
			booking.Name,
			booking.Phone,
			booking.VehicleNumber,
			booking.StartTime,
			booking.Status,
		).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrSlotAlreadyBooked
		}
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetBySlot получает активное бронирование слота
func (r *Repository) GetBySlot(ctx context.Context, slotNumber int) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"slot_number": slotNumber}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlot - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.SlotNumber,
		&booking.Name,
		&booking.Phone,
		&booking.VehicleNumber,
		&booking.StartTime,
		&booking.Status,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlot - scan booking: %v", ErrScanRow, err)
	}

	booking.StartTime = booking.StartTime.UTC()

	return &booking, nil
}

// UpdateStatus обновляет статус бронирования слота
func (r *Repository) UpdateStatus(ctx context.Context, slotNumber int, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", status).
		Where(squirrel.Eq{"slot_number": slotNumber}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "UpdateStatus", query, args)
}

// DeleteBySlot удаляет бронирование слота
func (r *Repository) DeleteBySlot(ctx context.Context, slotNumber int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"slot_number": slotNumber}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteBySlot - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "DeleteBySlot", query, args)
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
