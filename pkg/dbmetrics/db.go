package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Observer принимает длительность запросов
type Observer interface {
	ObserveDBQuery(operation string, duration time.Duration)
}

// DB обёртка над *sql.DB, замеряющая длительность запросов
type DB struct {
	*sql.DB
	observer Observer
}

// Wrap оборачивает db. observer может быть nil
func Wrap(db *sql.DB, observer Observer) *DB {
	return &DB{DB: db, observer: observer}
}

// RegisterPoolCollector регистрирует сборщик статистики connection pool.
// Статистика снимается при каждом scrape, фоновых горутин нет
func RegisterPoolCollector(reg prometheus.Registerer, db *sql.DB, dbName string) error {
	return reg.Register(collectors.NewDBStatsCollector(db, dbName))
}

func (d *DB) observe(operation string, start time.Time) {
	if d.observer == nil {
		return
	}
	d.observer.ObserveDBQuery(operation, time.Since(start))
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer d.observe("exec", time.Now())
	return d.DB.ExecContext(ctx, query, args...)
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer d.observe("query", time.Now())
	return d.DB.QueryContext(ctx, query, args...)
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer d.observe("query_row", time.Now())
	return d.DB.QueryRowContext(ctx, query, args...)
}

// BeginTx начинает транзакцию. Запросы внутри неё замеряются тем же observer
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	defer d.observe("begin", time.Now())
	tx, err := d.DB.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{Tx: tx, db: d}, nil
}

// Tx обёртка над *sql.Tx, замеряющая длительность запросов
type Tx struct {
	*sql.Tx
	db *DB
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer t.db.observe("tx_exec", time.Now())
	return t.Tx.ExecContext(ctx, query, args...)
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer t.db.observe("tx_query", time.Now())
	return t.Tx.QueryContext(ctx, query, args...)
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer t.db.observe("tx_query_row", time.Now())
	return t.Tx.QueryRowContext(ctx, query, args...)
}

func (t *Tx) Commit() error {
	defer t.db.observe("commit", time.Now())
	return t.Tx.Commit()
}
