package parkinglog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

const table = "parking_logs"

// Repository журнал парковочных сессий. Записи только добавляются и закрываются, но не удаляются.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет запись в журнал
func (r *Repository) Create(ctx context.Context, entry *domain.LogEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"slot_number",
			"name",
			"phone",
			"vehicle_number",
			"start_time",
			"end_time",
			"amount",
			"status",
		).
		Values(
			entry.ID,
			entry.SlotNumber,
			entry.Name,
			entry.Phone,
			entry.VehicleNumber,
			entry.StartTime,
			entry.EndTime,
			entry.Amount,
			entry.Status,
		).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// FinalizeActive закрывает активную запись слота, начатую в startTime.
// Закрытые записи больше не изменяются: условие status = 'active' входит в WHERE.
func (r *Repository) FinalizeActive(
	ctx context.Context,
	slotNumber int,
	startTime time.Time,
	endTime time.Time,
	amount float64,
	status domain.LogStatus,
) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("end_time", endTime).
		Set("amount", amount).
		Set("status", status).
		Where(squirrel.Eq{
			"slot_number": slotNumber,
			"start_time":  startTime,
			"status":      domain.LogActive,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: FinalizeActive - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: FinalizeActive - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: FinalizeActive - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrActiveEntryNotFound
	}

	return nil
}

// List возвращает журнал, начиная с самых новых сессий
func (r *Repository) List(ctx context.Context) ([]*domain.LogEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"slot_number",
		"name",
		"phone",
		"vehicle_number",
		"start_time",
		"end_time",
		"amount",
		"status",
	).
		From(table).
		OrderBy("start_time DESC", "id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.LogEntry, 0)
	for rows.Next() {
		var entry domain.LogEntry
		var endTime sql.NullTime
		var amount sql.NullFloat64

		err := rows.Scan(
			&entry.ID,
			&entry.SlotNumber,
			&entry.Name,
			&entry.Phone,
			&entry.VehicleNumber,
			&entry.StartTime,
			&endTime,
			&amount,
			&entry.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		entry.StartTime = entry.StartTime.UTC()
		if endTime.Valid {
			t := endTime.Time.UTC()
			entry.EndTime = &t
		}
		if amount.Valid {
			a := amount.Float64
			entry.Amount = &a
		}

		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
