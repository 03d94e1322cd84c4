package database

import (
	"errors"
	"fmt"

	"cinema-reservation/migrations"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

// Migrate applies every pending embedded migration. It returns the schema
// version after the run.
func Migrate(dsn string) (uint, error) {
	connConfig, err := pgx.ParseConfig(dsn)
	if err != nil {
		return 0, fmt.Errorf("parse dsn: %w", err)
	}

	db := stdlib.OpenDB(*connConfig)
	defer db.Close()

	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		return 0, fmt.Errorf("migration driver: %w", err)
	}

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return 0, fmt.Errorf("migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "pgx5", driver)
	if err != nil {
		return 0, fmt.Errorf("init migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("apply migrations: %w", err)
	}

	version, _, err := m.Version()
	if err != nil {
		return 0, fmt.Errorf("read migration version: %w", err)
	}

	return version, nil
}
