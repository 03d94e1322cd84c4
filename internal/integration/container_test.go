package integration_test

import (
	"context"
	"fmt"
	"time"

	"cinema-reservation/pkg/database"
	"cinema-reservation/pkg/utils"

	"github.com/docker/go-connections/nat"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	dbName     = "cinema_test"
	dbUser     = "cinema"
	dbPassword = "cinema"
)

// startPostgres runs a throwaway Postgres with the embedded migrations applied.
func startPostgres(ctx context.Context) (*postgres.PostgresContainer, utils.DatabaseConfig, error) {
	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
					dbUser, dbPassword, host, port.Port(), dbName)
			}).WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, utils.DatabaseConfig{}, fmt.Errorf("start postgres: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return container, utils.DatabaseConfig{}, fmt.Errorf("container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return container, utils.DatabaseConfig{}, fmt.Errorf("container port: %w", err)
	}

	config := utils.DatabaseConfig{
		Host:     host,
		Port:     port.Port(),
		Name:     dbName,
		User:     dbUser,
		Password: dbPassword,
		MaxConns: 10,
	}

	if _, err := database.Migrate(config.DSN()); err != nil {
		return container, config, fmt.Errorf("migrate: %w", err)
	}

	return container, config, nil
}
