// Package migrations содержит SQL миграции схемы и их применение через goose
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Fatal(format string, v ...interface{})
}

// Migrator обёртка над goose
type Migrator struct {
	db *sql.DB
}

// NewMigrator создаёт новый мигратор
func NewMigrator(db *sql.DB, log Logger) (*Migrator, error) {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{log: log})

	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}

	return &Migrator{db: db}, nil
}

// Up применяет все pending миграции
func (m *Migrator) Up(ctx context.Context) error {
	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// Version показывает текущую версию схемы
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	version, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		return 0, fmt.Errorf("get version: %w", err)
	}
	return version, nil
}

// gooseLogger адаптирует Logger сервиса к goose.Logger
type gooseLogger struct {
	log Logger
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.log.Info(format, v...)
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Fatal(format, v...)
}
