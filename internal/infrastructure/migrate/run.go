package migrate

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"gorm.io/gorm"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

// RunMigrations brings the schema up to date over the connection the
// service already holds; startup aborts before any request is served when
// the schema cannot be prepared.
func RunMigrations(db *gorm.DB, migrationPath string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("unwrapping sql.DB: %w", err)
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("preparing postgres migration driver: %w", err)
	}

	migrator, err := migrate.NewWithDatabaseInstance("file://"+migrationPath, "postgres", driver)
	if err != nil {
		return fmt.Errorf("opening migration source %s: %w", migrationPath, err)
	}

	err = migrator.Up()
	switch {
	case err == nil:
		version, dirty, _ := migrator.Version()
		slog.Info("schema migrated", "version", version, "dirty", dirty)
	case errors.Is(err, migrate.ErrNoChange):
		slog.Info("schema already up to date")
	default:
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}
