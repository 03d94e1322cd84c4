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

type HallRepository interface {
	Create(ctx context.Context, hall *entity.Hall) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Hall, error)
	FindAll(ctx context.Context) ([]*entity.Hall, error)
	Update(ctx context.Context, hall *entity.Hall) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type hallRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHallRepository(db database.PgxIface, log *zap.Logger) HallRepository {
	return &hallRepository{
		db:  db,
		log: log.With(zap.String("repository", "hall")),
	}
}

func (r *hallRepository) Create(ctx context.Context, hall *entity.Hall) error {
	query := `
		INSERT INTO halls (id, name, rows, seats_per_row, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		hall.ID,
		hall.Name,
		hall.Rows,
		hall.SeatsPerRow,
		hall.CreatedAt,
		hall.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create hall",
			zap.Error(err),
			zap.String("name", hall.Name),
		)
		return fmt.Errorf("create hall %s: %w", hall.Name, err)
	}

	return nil
}

func (r *hallRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hall, error) {
	query := `
		SELECT id, name, rows, seats_per_row, created_at, updated_at
		FROM halls
		WHERE id = $1
	`

	hall, err := scanHall(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find hall by ID",
			zap.Error(err),
			zap.String("hall_id", id.String()),
		)
		return nil, fmt.Errorf("find hall by ID %s: %w", id.String(), err)
	}

	return hall, nil
}

func (r *hallRepository) FindAll(ctx context.Context) ([]*entity.Hall, error) {
	query := `
		SELECT id, name, rows, seats_per_row, created_at, updated_at
		FROM halls
		ORDER BY name, id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list halls", zap.Error(err))
		return nil, fmt.Errorf("list halls: %w", err)
	}
	defer rows.Close()

	var halls []*entity.Hall
	for rows.Next() {
		hall, err := scanHall(rows)
		if err != nil {
			r.log.Error("Failed to scan hall row", zap.Error(err))
			return nil, fmt.Errorf("scan hall row: %w", err)
		}
		halls = append(halls, hall)
	}

	return halls, rows.Err()
}

// Update changes name and geometry. A geometry that no longer contains an
// already sold position in one of the hall's screenings is rejected.
func (r *hallRepository) Update(ctx context.Context, hall *entity.Hall) error {
	err := runInTx(ctx, r.db, func(tx pgx.Tx) error {
		var id uuid.UUID
		err := tx.QueryRow(ctx, `SELECT id FROM halls WHERE id = $1 FOR UPDATE`, hall.ID).Scan(&id)
		if err == pgx.ErrNoRows {
			return &reservation.NotFoundError{Entity: "hall", ID: hall.ID.String()}
		}
		if err != nil {
			return fmt.Errorf("lock hall: %w", err)
		}

		var maxRow, maxSeat int
		err = tx.QueryRow(ctx, `
			SELECT COALESCE(MAX(t.row_num), 0), COALESCE(MAX(t.seat_num), 0)
			FROM tickets t
			JOIN screenings s ON s.id = t.screening_id
			WHERE s.hall_id = $1
		`, hall.ID).Scan(&maxRow, &maxSeat)
		if err != nil {
			return fmt.Errorf("read sold extent: %w", err)
		}

		if err := reservation.CheckResize(hall.Geometry(), maxRow, maxSeat); err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			UPDATE halls
			SET name = $2, rows = $3, seats_per_row = $4, updated_at = $5
			WHERE id = $1
		`, hall.ID, hall.Name, hall.Rows, hall.SeatsPerRow, hall.UpdatedAt)
		if err != nil {
			return fmt.Errorf("update hall row: %w", err)
		}
		return nil
	})

	if err != nil {
		r.log.Warn("Failed to update hall",
			zap.Error(err),
			zap.String("hall_id", hall.ID.String()),
		)
		return fmt.Errorf("update hall %s: %w", hall.ID.String(), err)
	}

	return nil
}

// Delete removes the hall together with its screenings, their tickets and
// the orders left empty by that.
func (r *hallRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var purged int64
	err := runInTx(ctx, r.db, func(tx pgx.Tx) error {
		var locked uuid.UUID
		err := tx.QueryRow(ctx, `SELECT id FROM halls WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
		if err == pgx.ErrNoRows {
			return &reservation.NotFoundError{Entity: "hall", ID: id.String()}
		}
		if err != nil {
			return fmt.Errorf("lock hall: %w", err)
		}

		screeningIDs, err := screeningIDsWhere(ctx, tx, "hall_id", id.String())
		if err != nil {
			return fmt.Errorf("find hall screenings: %w", err)
		}

		if purged, err = purgeScreenings(ctx, tx, screeningIDs); err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `DELETE FROM halls WHERE id = $1`, id)
		return err
	})

	if err != nil {
		r.log.Warn("Failed to delete hall",
			zap.Error(err),
			zap.String("hall_id", id.String()),
		)
		return fmt.Errorf("delete hall %s: %w", id.String(), err)
	}

	r.log.Info("Hall deleted",
		zap.String("hall_id", id.String()),
		zap.Int64("screenings_removed", purged),
	)
	return nil
}

func scanHall(row pgx.Row) (*entity.Hall, error) {
	var hall entity.Hall
	err := row.Scan(
		&hall.ID,
		&hall.Name,
		&hall.Rows,
		&hall.SeatsPerRow,
		&hall.CreatedAt,
		&hall.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &hall, nil
}
