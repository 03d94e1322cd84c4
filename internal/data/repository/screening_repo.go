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

type ScreeningRepository interface {
	Create(ctx context.Context, screening *entity.Screening) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Screening, error)
	FindAll(ctx context.Context, filter entity.ScreeningFilter) ([]*entity.ScreeningSummary, error)
	Update(ctx context.Context, screening *entity.Screening) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type screeningRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewScreeningRepository(db database.PgxIface, log *zap.Logger) ScreeningRepository {
	return &screeningRepository{
		db:  db,
		log: log.With(zap.String("repository", "screening")),
	}
}

func (r *screeningRepository) Create(ctx context.Context, screening *entity.Screening) error {
	query := `
		INSERT INTO screenings (id, show_time, movie_id, hall_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		screening.ID,
		screening.ShowTime,
		screening.MovieID,
		screening.HallID,
		screening.CreatedAt,
		screening.UpdatedAt,
	)

	if nf := screeningRefNotFound(err, screening); nf != nil {
		return nf
	}
	if err != nil {
		r.log.Error("Failed to create screening",
			zap.Error(err),
			zap.String("movie_id", screening.MovieID.String()),
			zap.String("hall_id", screening.HallID.String()),
		)
		return fmt.Errorf("create screening: %w", err)
	}

	return nil
}

// FindByID returns the screening with its hall attached.
func (r *screeningRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Screening, error) {
	query := `
		SELECT s.id, s.show_time, s.movie_id, s.hall_id, s.created_at, s.updated_at,
		       h.id, h.name, h.rows, h.seats_per_row, h.created_at, h.updated_at
		FROM screenings s
		JOIN halls h ON h.id = s.hall_id
		WHERE s.id = $1
	`

	screening, err := scanScreeningWithHall(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find screening by ID",
			zap.Error(err),
			zap.String("screening_id", id.String()),
		)
		return nil, fmt.Errorf("find screening by ID %s: %w", id.String(), err)
	}

	return screening, nil
}

// FindAll lists screenings newest first, each with the number of tickets
// sold at the moment of the query.
func (r *screeningRepository) FindAll(ctx context.Context, filter entity.ScreeningFilter) ([]*entity.ScreeningSummary, error) {
	query := `
		SELECT s.id, s.show_time, m.id, m.title, h.id, h.name, h.rows, h.seats_per_row,
		       (SELECT COUNT(*) FROM tickets t WHERE t.screening_id = s.id)
		FROM screenings s
		JOIN movies m ON m.id = s.movie_id
		JOIN halls h ON h.id = s.hall_id
		WHERE ($1::date IS NULL OR (s.show_time AT TIME ZONE 'UTC')::date = $1::date)
		  AND ($2::uuid IS NULL OR s.movie_id = $2::uuid)
		ORDER BY s.show_time DESC, s.id
	`

	var date, movieID *string
	if filter.Date != nil {
		d := filter.Date.Format("2006-01-02")
		date = &d
	}
	if filter.MovieID != nil {
		m := filter.MovieID.String()
		movieID = &m
	}

	rows, err := r.db.Query(ctx, query, date, movieID)
	if err != nil {
		r.log.Error("Failed to list screenings",
			zap.Error(err),
			zap.Stringp("date", date),
			zap.Stringp("movie_id", movieID),
		)
		return nil, fmt.Errorf("list screenings: %w", err)
	}
	defer rows.Close()

	var screenings []*entity.ScreeningSummary
	for rows.Next() {
		var s entity.ScreeningSummary
		err := rows.Scan(
			&s.ID,
			&s.ShowTime,
			&s.MovieID,
			&s.MovieTitle,
			&s.HallID,
			&s.HallName,
			&s.Geometry.Rows,
			&s.Geometry.SeatsPerRow,
			&s.Sold,
		)
		if err != nil {
			r.log.Error("Failed to scan screening row", zap.Error(err))
			return nil, fmt.Errorf("scan screening row: %w", err)
		}
		screenings = append(screenings, &s)
	}

	return screenings, rows.Err()
}

// Update reschedules a screening. Moving it to a hall whose grid does not
// contain every seat already sold for it is rejected.
func (r *screeningRepository) Update(ctx context.Context, screening *entity.Screening) error {
	err := runInTx(ctx, r.db, func(tx pgx.Tx) error {
		var current uuid.UUID
		err := tx.QueryRow(ctx, `SELECT hall_id FROM screenings WHERE id = $1 FOR UPDATE`, screening.ID).Scan(&current)
		if err == pgx.ErrNoRows {
			return &reservation.NotFoundError{Entity: "screening", ID: screening.ID.String()}
		}
		if err != nil {
			return fmt.Errorf("lock screening: %w", err)
		}

		if current != screening.HallID {
			var g reservation.Geometry
			err := tx.QueryRow(ctx,
				`SELECT rows, seats_per_row FROM halls WHERE id = $1 FOR SHARE`,
				screening.HallID).Scan(&g.Rows, &g.SeatsPerRow)
			if err == pgx.ErrNoRows {
				return &reservation.NotFoundError{Entity: "hall", ID: screening.HallID.String()}
			}
			if err != nil {
				return fmt.Errorf("lock target hall: %w", err)
			}

			var maxRow, maxSeat int
			err = tx.QueryRow(ctx, `
				SELECT COALESCE(MAX(row_num), 0), COALESCE(MAX(seat_num), 0)
				FROM tickets WHERE screening_id = $1
			`, screening.ID).Scan(&maxRow, &maxSeat)
			if err != nil {
				return fmt.Errorf("read sold extent: %w", err)
			}

			if err := reservation.CheckResize(g, maxRow, maxSeat); err != nil {
				return err
			}
		}

		_, err = tx.Exec(ctx, `
			UPDATE screenings
			SET show_time = $2, movie_id = $3, hall_id = $4, updated_at = $5
			WHERE id = $1
		`, screening.ID, screening.ShowTime, screening.MovieID, screening.HallID, screening.UpdatedAt)
		return err
	})

	if nf := screeningRefNotFound(err, screening); nf != nil {
		return nf
	}
	if err != nil {
		r.log.Warn("Failed to update screening",
			zap.Error(err),
			zap.String("screening_id", screening.ID.String()),
		)
		return fmt.Errorf("update screening %s: %w", screening.ID.String(), err)
	}

	return nil
}

// Delete removes the screening, its tickets and the orders left empty.
func (r *screeningRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := runInTx(ctx, r.db, func(tx pgx.Tx) error {
		var locked uuid.UUID
		err := tx.QueryRow(ctx, `SELECT id FROM screenings WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
		if err == pgx.ErrNoRows {
			return &reservation.NotFoundError{Entity: "screening", ID: id.String()}
		}
		if err != nil {
			return fmt.Errorf("lock screening: %w", err)
		}

		_, err = purgeScreenings(ctx, tx, []string{id.String()})
		return err
	})

	if err != nil {
		r.log.Warn("Failed to delete screening",
			zap.Error(err),
			zap.String("screening_id", id.String()),
		)
		return fmt.Errorf("delete screening %s: %w", id.String(), err)
	}

	r.log.Info("Screening deleted", zap.String("screening_id", id.String()))
	return nil
}

func screeningRefNotFound(err error, screening *entity.Screening) *reservation.NotFoundError {
	constraint, ok := foreignKeyViolation(err)
	if !ok {
		return nil
	}
	switch constraint {
	case "screenings_movie_id_fkey":
		return &reservation.NotFoundError{Entity: "movie", ID: screening.MovieID.String()}
	case "screenings_hall_id_fkey":
		return &reservation.NotFoundError{Entity: "hall", ID: screening.HallID.String()}
	}
	return nil
}

func scanScreeningWithHall(row pgx.Row) (*entity.Screening, error) {
	var s entity.Screening
	var h entity.Hall
	err := row.Scan(
		&s.ID,
		&s.ShowTime,
		&s.MovieID,
		&s.HallID,
		&s.CreatedAt,
		&s.UpdatedAt,
		&h.ID,
		&h.Name,
		&h.Rows,
		&h.SeatsPerRow,
		&h.CreatedAt,
		&h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Hall = &h
	return &s, nil
}
