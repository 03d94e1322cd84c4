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

type ActorRepository interface {
	Create(ctx context.Context, actor *entity.Actor) error
	FindAll(ctx context.Context) ([]*entity.Actor, error)
	Update(ctx context.Context, actor *entity.Actor) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type actorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewActorRepository(db database.PgxIface, log *zap.Logger) ActorRepository {
	return &actorRepository{
		db:  db,
		log: log.With(zap.String("repository", "actor")),
	}
}

func (r *actorRepository) Create(ctx context.Context, actor *entity.Actor) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO actors (id, first_name, last_name) VALUES ($1, $2, $3)`,
		actor.ID, actor.FirstName, actor.LastName)
	if err != nil {
		r.log.Error("Failed to create actor",
			zap.Error(err),
			zap.String("full_name", actor.FullName()),
		)
		return fmt.Errorf("create actor %s: %w", actor.FullName(), err)
	}

	return nil
}

func (r *actorRepository) FindAll(ctx context.Context) ([]*entity.Actor, error) {
	rows, err := r.db.Query(ctx, `SELECT id, first_name, last_name FROM actors ORDER BY last_name, first_name`)
	if err != nil {
		r.log.Error("Failed to list actors", zap.Error(err))
		return nil, fmt.Errorf("list actors: %w", err)
	}

	actors, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[entity.Actor])
	if err != nil {
		r.log.Error("Failed to scan actor rows", zap.Error(err))
		return nil, fmt.Errorf("scan actor rows: %w", err)
	}

	return actors, nil
}

func (r *actorRepository) Update(ctx context.Context, actor *entity.Actor) error {
	result, err := r.db.Exec(ctx,
		`UPDATE actors SET first_name = $2, last_name = $3 WHERE id = $1`,
		actor.ID, actor.FirstName, actor.LastName)
	if err != nil {
		r.log.Error("Failed to update actor",
			zap.Error(err),
			zap.String("actor_id", actor.ID.String()),
		)
		return fmt.Errorf("update actor %s: %w", actor.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return &reservation.NotFoundError{Entity: "actor", ID: actor.ID.String()}
	}

	return nil
}

func (r *actorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM actors WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete actor",
			zap.Error(err),
			zap.String("actor_id", id.String()),
		)
		return fmt.Errorf("delete actor %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return &reservation.NotFoundError{Entity: "actor", ID: id.String()}
	}

	return nil
}
