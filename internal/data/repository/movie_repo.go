package repository

import (
	"context"
	"fmt"
	"strings"

	"cinema-reservation/internal/data/entity"
	"cinema-reservation/internal/reservation"
	"cinema-reservation/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie, genreIDs, actorIDs []uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindAll(ctx context.Context, filter entity.MovieFilter) ([]*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie, genreIDs, actorIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie, genreIDs, actorIDs []uuid.UUID) error {
	err := runInTx(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO movies (id, title, description, duration, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, movie.ID, movie.Title, movie.Description, movie.Duration, movie.CreatedAt, movie.UpdatedAt)
		if err != nil {
			return err
		}
		return replaceMovieLinks(ctx, tx, movie.ID, genreIDs, actorIDs)
	})

	if err != nil {
		if nf := linkNotFound(err); nf != nil {
			return nf
		}
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie %s: %w", movie.Title, err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `
		SELECT id, title, description, duration, created_at, updated_at
		FROM movies
		WHERE id = $1
	`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie by ID %s: %w", id.String(), err)
	}

	if err := r.attachLinks(ctx, []*entity.Movie{movie}); err != nil {
		return nil, err
	}

	return movie, nil
}

// FindAll lists movies ordered by title. Genre and actor filters match
// movies linked to any of the given ids. Title is a case-insensitive substring.
func (r *movieRepository) FindAll(ctx context.Context, filter entity.MovieFilter) ([]*entity.Movie, error) {
	var where []string
	var args []any

	if len(filter.GenreIDs) > 0 {
		args = append(args, uuidStrings(filter.GenreIDs))
		where = append(where, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM movie_genres mg WHERE mg.movie_id = m.id AND mg.genre_id = ANY($%d::uuid[]))`, len(args)))
	}
	if len(filter.ActorIDs) > 0 {
		args = append(args, uuidStrings(filter.ActorIDs))
		where = append(where, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM movie_actors ma WHERE ma.movie_id = m.id AND ma.actor_id = ANY($%d::uuid[]))`, len(args)))
	}
	if like := filter.TitleLike(); like != "" {
		args = append(args, like)
		where = append(where, fmt.Sprintf(`m.title ILIKE $%d`, len(args)))
	}

	query := `SELECT m.id, m.title, m.description, m.duration, m.created_at, m.updated_at FROM movies m`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY m.title, m.id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list movies", zap.Error(err))
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	if err := r.attachLinks(ctx, movies); err != nil {
		return nil, err
	}

	return movies, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie, genreIDs, actorIDs []uuid.UUID) error {
	err := runInTx(ctx, r.db, func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx, `
			UPDATE movies
			SET title = $2, description = $3, duration = $4, updated_at = $5
			WHERE id = $1
		`, movie.ID, movie.Title, movie.Description, movie.Duration, movie.UpdatedAt)
		if err != nil {
			return err
		}
		if result.RowsAffected() == 0 {
			return &reservation.NotFoundError{Entity: "movie", ID: movie.ID.String()}
		}
		return replaceMovieLinks(ctx, tx, movie.ID, genreIDs, actorIDs)
	})

	if err != nil {
		if nf := linkNotFound(err); nf != nil {
			return nf
		}
		r.log.Warn("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movie.ID.String()),
		)
		return fmt.Errorf("update movie %s: %w", movie.ID.String(), err)
	}

	return nil
}

// Delete removes the movie with its screenings, their tickets and the orders
// left empty by that.
func (r *movieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var purged int64
	err := runInTx(ctx, r.db, func(tx pgx.Tx) error {
		var locked uuid.UUID
		err := tx.QueryRow(ctx, `SELECT id FROM movies WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
		if err == pgx.ErrNoRows {
			return &reservation.NotFoundError{Entity: "movie", ID: id.String()}
		}
		if err != nil {
			return fmt.Errorf("lock movie: %w", err)
		}

		screeningIDs, err := screeningIDsWhere(ctx, tx, "movie_id", id.String())
		if err != nil {
			return fmt.Errorf("find movie screenings: %w", err)
		}

		if purged, err = purgeScreenings(ctx, tx, screeningIDs); err != nil {
			return err
		}

		if err := replaceMovieLinks(ctx, tx, id, nil, nil); err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
		return err
	})

	if err != nil {
		r.log.Warn("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return fmt.Errorf("delete movie %s: %w", id.String(), err)
	}

	r.log.Info("Movie deleted",
		zap.String("movie_id", id.String()),
		zap.Int64("screenings_removed", purged),
	)
	return nil
}

// attachLinks loads genres and actors for all movies with one query each.
func (r *movieRepository) attachLinks(ctx context.Context, movies []*entity.Movie) error {
	if len(movies) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*entity.Movie, len(movies))
	ids := make([]uuid.UUID, len(movies))
	for i, m := range movies {
		byID[m.ID] = m
		ids[i] = m.ID
	}

	rows, err := r.db.Query(ctx, `
		SELECT mg.movie_id, g.id, g.name
		FROM movie_genres mg
		JOIN genres g ON g.id = mg.genre_id
		WHERE mg.movie_id = ANY($1::uuid[])
		ORDER BY g.name
	`, uuidStrings(ids))
	if err != nil {
		r.log.Error("Failed to load movie genres", zap.Error(err))
		return fmt.Errorf("load movie genres: %w", err)
	}
	for rows.Next() {
		var movieID uuid.UUID
		var g entity.Genre
		if err := rows.Scan(&movieID, &g.ID, &g.Name); err != nil {
			rows.Close()
			return fmt.Errorf("scan movie genre: %w", err)
		}
		byID[movieID].Genres = append(byID[movieID].Genres, g)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate movie genres: %w", err)
	}

	rows, err = r.db.Query(ctx, `
		SELECT ma.movie_id, a.id, a.first_name, a.last_name
		FROM movie_actors ma
		JOIN actors a ON a.id = ma.actor_id
		WHERE ma.movie_id = ANY($1::uuid[])
		ORDER BY a.last_name, a.first_name
	`, uuidStrings(ids))
	if err != nil {
		r.log.Error("Failed to load movie actors", zap.Error(err))
		return fmt.Errorf("load movie actors: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var movieID uuid.UUID
		var a entity.Actor
		if err := rows.Scan(&movieID, &a.ID, &a.FirstName, &a.LastName); err != nil {
			return fmt.Errorf("scan movie actor: %w", err)
		}
		byID[movieID].Actors = append(byID[movieID].Actors, a)
	}

	return rows.Err()
}

func replaceMovieLinks(ctx context.Context, tx pgx.Tx, movieID uuid.UUID, genreIDs, actorIDs []uuid.UUID) error {
	if _, err := tx.Exec(ctx, `DELETE FROM movie_genres WHERE movie_id = $1`, movieID); err != nil {
		return fmt.Errorf("clear movie genres: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM movie_actors WHERE movie_id = $1`, movieID); err != nil {
		return fmt.Errorf("clear movie actors: %w", err)
	}

	if len(genreIDs) > 0 {
		_, err := tx.Exec(ctx, `
			INSERT INTO movie_genres (movie_id, genre_id)
			SELECT $1, g FROM unnest($2::uuid[]) AS g
			ON CONFLICT DO NOTHING
		`, movieID, uuidStrings(genreIDs))
		if err != nil {
			return fmt.Errorf("link movie genres: %w", err)
		}
	}
	if len(actorIDs) > 0 {
		_, err := tx.Exec(ctx, `
			INSERT INTO movie_actors (movie_id, actor_id)
			SELECT $1, a FROM unnest($2::uuid[]) AS a
			ON CONFLICT DO NOTHING
		`, movieID, uuidStrings(actorIDs))
		if err != nil {
			return fmt.Errorf("link movie actors: %w", err)
		}
	}

	return nil
}

func linkNotFound(err error) *reservation.NotFoundError {
	constraint, ok := foreignKeyViolation(err)
	if !ok {
		return nil
	}
	switch constraint {
	case "movie_genres_genre_id_fkey":
		return &reservation.NotFoundError{Entity: "genre"}
	case "movie_actors_actor_id_fkey":
		return &reservation.NotFoundError{Entity: "actor"}
	}
	return nil
}

func scanMovie(row pgx.Row) (*entity.Movie, error) {
	var movie entity.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Duration,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}
