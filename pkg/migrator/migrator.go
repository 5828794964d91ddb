package migrator

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

// ErrNoChange is returned when the schema is already at the requested version.
var ErrNoChange = migrate.ErrNoChange

func newMigrate(dsn, migrationsPath string) (*migrate.Migrate, func(), error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to open database: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("unable to create migrate driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+migrationsPath, "postgres", driver)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("unable to create migrate instance: %w", err)
	}

	return m, func() { m.Close() }, nil
}

func Up(dsn, migrationsPath string) error {
	m, closeFn, err := newMigrate(dsn, migrationsPath)
	if err != nil {
		return err
	}
	defer closeFn()

	return m.Up()
}

func Down(dsn, migrationsPath string) error {
	m, closeFn, err := newMigrate(dsn, migrationsPath)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
