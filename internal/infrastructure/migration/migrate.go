package migration

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	// Blank import required for PostgreSQL driver registration for migrations
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"taskkeeper/internal/app/server/config"
)

// Migrator - часть *migrate.Migrate, которой пользуется Migration
type Migrator interface {
	Up() error
	Close() (error, error)
}

// MigrationEngine создаёт мигратор по URL источника и базы
type MigrationEngine func(sourceURL, databaseURL string) (Migrator, error)

type Migration struct {
	cfg    *config.Config
	engine MigrationEngine
}

func NewMigration(conf *config.Config, engine MigrationEngine) *Migration {
	return &Migration{
		cfg:    conf,
		engine: engine,
	}
}

// DefaultEngine открывает migrate.Migrate
func DefaultEngine(sourceURL, databaseURL string) (Migrator, error) {
	return migrate.New(sourceURL, databaseURL)
}

// SourceURL возвращает file:// URL каталога миграций
func (mg *Migration) SourceURL() string {
	return "file://" + filepath.ToSlash(mg.cfg.DB.Migrations)
}

// Up применяет все новые миграции; отсутствие изменений ошибкой не считается
func (mg *Migration) Up() (err error) {
	m, err := mg.engine(mg.SourceURL(), mg.cfg.DB.DatabaseURI)
	if err != nil {
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			err = errors.Join(err, fmt.Errorf("migration source error: %w", serr))
		}
		if dberr != nil {
			err = errors.Join(err, fmt.Errorf("migration database error: %w", dberr))
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}
	return nil
}
