package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

const table = "parking_slots"

// Repository репозиторий парковочных мест
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByNumber получает слот по номеру.
// Внутри транзакции строка блокируется (FOR UPDATE): все изменения одного слота
// выполняются последовательно.
func (r *Repository) GetByNumber(ctx context.Context, number int) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("number", "status", "current_booking_id").
		From(table).
		Where(squirrel.Eq{"number": number})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumber - build select query: %v", ErrBuildQuery, err)
	}

	var slot domain.Slot
	var bookingID sql.NullString

	err = executor.QueryRowContext(ctx, query, args...).Scan(&slot.Number, &slot.Status, &bookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumber - scan slot: %v", ErrScanRow, err)
	}

	if bookingID.Valid {
		slot.CurrentBookingID = &bookingID.String
	}

	return &slot, nil
}

// List возвращает все слоты по возрастанию номера
func (r *Repository) List(ctx context.Context) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("number", "status", "current_booking_id").
		From(table).
		OrderBy("number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		var slot domain.Slot
		var bookingID sql.NullString

		if err := rows.Scan(&slot.Number, &slot.Status, &bookingID); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		if bookingID.Valid {
			slot.CurrentBookingID = &bookingID.String
		}

		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// UpdateState сохраняет статус слота и ссылку на бронирование
func (r *Repository) UpdateState(ctx context.Context, slot *domain.Slot) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", slot.Status).
		Set("current_booking_id", slot.CurrentBookingID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"number": slot.Number}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateState - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateState - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateState - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// Count возвращает количество слотов
func (r *Repository) Count(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Seed создаёт пустые слоты с номерами 1..count; существующие номера пропускаются
func (r *Repository) Seed(ctx context.Context, count int) error {
	if count <= 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert(table).Columns("number", "status")
	for number := 1; number <= count; number++ {
		insertBuilder = insertBuilder.Values(number, domain.SlotEmpty)
	}

	query, args, err := insertBuilder.Suffix("ON CONFLICT (number) DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("%w: Seed - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Seed - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
