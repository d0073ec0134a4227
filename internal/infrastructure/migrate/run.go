package migrate

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"gorm.io/gorm"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

const MigrationsTable = "fulfillment_schema_migrations"

var ErrDirty = errors.New("database schema is dirty")

// RunMigrations applies every pending up migration found under migrationPath.
// A schema left dirty by a failed run is reported with ErrDirty and never forced.
func RunMigrations(db *gorm.DB, migrationPath string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{
		MigrationsTable:  MigrationsTable,
		StatementTimeout: time.Minute,
	})
	if err != nil {
		return fmt.Errorf("creating postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL(migrationPath), "postgres", driver)
	if err != nil {
		return fmt.Errorf("creating migrate instance: %w", err)
	}
	m.LockTimeout = 30 * time.Second

	if _, dirty, err := m.Version(); err == nil && dirty {
		return ErrDirty
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("applying migrations: %w", err)
	}

	version, _, _ := m.Version()
	slog.Info("fulfillment schema migrated", "version", version)
	return nil
}

// Versions lists the migration versions under migrationPath in order and checks that
// each of them has both an up and a down file.
func Versions(migrationPath string) ([]uint, error) {
	src, err := source.Open(sourceURL(migrationPath))
	if err != nil {
		return nil, fmt.Errorf("open migrations: %w", err)
	}
	defer src.Close()

	var versions []uint
	v, err := src.First()
	for err == nil {
		if err := checkDirections(src, v); err != nil {
			return nil, err
		}
		versions = append(versions, v)
		v, err = src.Next(v)
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("walk migrations: %w", err)
	}
	return versions, nil
}

func checkDirections(src source.Driver, v uint) error {
	up, _, err := src.ReadUp(v)
	if err != nil {
		return fmt.Errorf("migration %d has no up file: %w", v, err)
	}
	_ = up.Close()

	down, _, err := src.ReadDown(v)
	if err != nil {
		return fmt.Errorf("migration %d has no down file: %w", v, err)
	}
	_ = down.Close()
	return nil
}

func sourceURL(path string) string {
	return fmt.Sprintf("file://%s", path)
}
