package repository

import (
	"context"
	"fmt"

	"cinema-reservation/internal/data/entity"
	"cinema-reservation/internal/reservation"
	"cinema-reservation/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type GenreRepository interface {
	Create(ctx context.Context, genre *entity.Genre) error
	FindAll(ctx context.Context) ([]*entity.Genre, error)
	Update(ctx context.Context, genre *entity.Genre) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type genreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGenreRepository(db database.PgxIface, log *zap.Logger) GenreRepository {
	return &genreRepository{
		db:  db,
		log: log.With(zap.String("repository", "genre")),
	}
}

func (r *genreRepository) Create(ctx context.Context, genre *entity.Genre) error {
	_, err := r.db.Exec(ctx, `INSERT INTO genres (id, name) VALUES ($1, $2)`, genre.ID, genre.Name)
	if _, dup := uniqueViolation(err); dup {
		return fmt.Errorf("genre %q: %w", genre.Name, ErrAlreadyExists)
	}
	if err != nil {
		r.log.Error("Failed to create genre",
			zap.Error(err),
			zap.String("name", genre.Name),
		)
		return fmt.Errorf("create genre %s: %w", genre.Name, err)
	}

	return nil
}

func (r *genreRepository) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM genres ORDER BY name`)
	if err != nil {
		r.log.Error("Failed to list genres", zap.Error(err))
		return nil, fmt.Errorf("list genres: %w", err)
	}

	genres, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[entity.Genre])
	if err != nil {
		r.log.Error("Failed to scan genre rows", zap.Error(err))
		return nil, fmt.Errorf("scan genre rows: %w", err)
	}

	return genres, nil
}

func (r *genreRepository) Update(ctx context.Context, genre *entity.Genre) error {
	result, err := r.db.Exec(ctx, `UPDATE genres SET name = $2 WHERE id = $1`, genre.ID, genre.Name)
	if _, dup := uniqueViolation(err); dup {
		return fmt.Errorf("genre %q: %w", genre.Name, ErrAlreadyExists)
	}
	if err != nil {
		r.log.Error("Failed to update genre",
			zap.Error(err),
			zap.String("genre_id", genre.ID.String()),
		)
		return fmt.Errorf("update genre %s: %w", genre.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return &reservation.NotFoundError{Entity: "genre", ID: genre.ID.String()}
	}

	return nil
}

func (r *genreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM genres WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete genre",
			zap.Error(err),
			zap.String("genre_id", id.String()),
		)
		return fmt.Errorf("delete genre %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return &reservation.NotFoundError{Entity: "genre", ID: id.String()}
	}

	return nil
}
