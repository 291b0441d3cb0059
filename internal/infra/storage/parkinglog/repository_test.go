package parkinglog

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

var logColumns = []string{
	"id", "slot_number", "name", "phone", "vehicle_number", "start_time", "end_time", "amount", "status",
}

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newRepo(t)
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	entry := domain.NewLogEntry(&domain.Booking{
		ID:         "b-1",
		SlotNumber: 2,
		Occupant:   domain.Occupant{Name: "Alice", Phone: "555-1111", VehicleNumber: "KA-01-AB-1234"},
		StartTime:  start,
	})

	mock.ExpectExec("INSERT INTO parking_logs").
		WithArgs(entry.ID, 2, "Alice", "555-1111", "KA-01-AB-1234", start, nil, nil, "active").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), entry))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FinalizeActive(t *testing.T) {
	repo, mock := newRepo(t)
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(2*time.Hour + 10*time.Minute)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE parking_logs SET end_time = $1, amount = $2, status = $3 WHERE slot_number = $4 AND start_time = $5 AND status = $6")).
		WithArgs(end, 30.0, "completed", 2, start, "active").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.FinalizeActive(context.Background(), 2, start, end, 30, domain.LogCompleted)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FinalizeActive_NothingActive(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec("UPDATE parking_logs").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.FinalizeActive(context.Background(), 2, time.Now(), time.Now(), 0, domain.LogCancelled)

	assert.ErrorIs(t, err, ErrActiveEntryNotFound)
}

func TestRepository_List(t *testing.T) {
	repo, mock := newRepo(t)
	older := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	newer := older.Add(3 * time.Hour)
	end := older.Add(time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("FROM parking_logs ORDER BY start_time DESC, id DESC")).
		WillReturnRows(sqlmock.NewRows(logColumns).
			AddRow("l-2", 1, "Bob", "555-2222", "KA-02", newer, nil, nil, "active").
			AddRow("l-1", 2, "Alice", "555-1111", "KA-01", older, end, 10.0, "completed"))

	entries, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, domain.LogActive, entries[0].Status)
	assert.Nil(t, entries[0].EndTime)
	assert.Nil(t, entries[0].Amount)

	assert.Equal(t, domain.LogCompleted, entries[1].Status)
	require.NotNil(t, entries[1].EndTime)
	require.NotNil(t, entries[1].Amount)
	assert.Equal(t, 10.0, *entries[1].Amount)
	assert.True(t, end.Equal(*entries[1].EndTime))
}
