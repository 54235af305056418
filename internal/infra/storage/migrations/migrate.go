package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// gooseLogger адаптирует логгер сервиса к goose.Logger
type gooseLogger struct {
	log Logger
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.log.Info("goose: "+format, v...)
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Error("goose: "+format, v...)
}

// Up применяет все новые миграции схемы
func Up(ctx context.Context, db *sql.DB, log Logger) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{log: log})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "sql"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("goose version: %w", err)
	}

	log.Info("Database schema is at version %d", version)
	return nil
}
