package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-reservation/internal/data/entity"
	"cinema-reservation/internal/data/repository"
	"cinema-reservation/internal/dto/request"
	"cinema-reservation/internal/dto/response"
	"cinema-reservation/internal/reservation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context, filter entity.MovieFilter) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, id string) (*response.MovieDetailResponse, error)

	// Admin
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieDetailResponse, error)
	UpdateMovie(ctx context.Context, id string, req *request.MovieRequest) (*response.MovieDetailResponse, error)
	DeleteMovie(ctx context.Context, id string) error
}

type movieService struct {
	movies repository.MovieRepository
	log    *zap.Logger
}

func NewMovieService(movies repository.MovieRepository, log *zap.Logger) MovieService {
	return &movieService{
		movies: movies,
		log:    log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context, filter entity.MovieFilter) ([]response.MovieResponse, error) {
	movies, err := s.movies.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list movies", zap.Error(err))
		return nil, fmt.Errorf("list movies: %w", err)
	}

	items := make([]response.MovieResponse, len(movies))
	for i, m := range movies {
		items[i] = response.MovieToResponse(m)
	}
	return items, nil
}

func (s *movieService) GetMovieByID(ctx context.Context, id string) (*response.MovieDetailResponse, error) {
	movieID, err := parseID("movie", id)
	if err != nil {
		return nil, err
	}

	movie, err := s.movies.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("find movie %s: %w", id, err)
	}
	if movie == nil {
		return nil, &reservation.NotFoundError{Entity: "movie", ID: id}
	}

	resp := response.MovieToDetailResponse(movie)
	return &resp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieDetailResponse, error) {
	genreIDs, actorIDs, err := movieLinks(req)
	if err != nil {
		return nil, err
	}

	movie := &entity.Movie{
		Base:        entity.NewBase(time.Now().UTC()),
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
	}
	if err := s.movies.Create(ctx, movie, genreIDs, actorIDs); err != nil {
		return nil, err
	}

	s.log.Info("Movie created", zap.String("movie_id", movie.ID.String()), zap.String("title", movie.Title))
	return s.GetMovieByID(ctx, movie.ID.String())
}

func (s *movieService) UpdateMovie(ctx context.Context, id string, req *request.MovieRequest) (*response.MovieDetailResponse, error) {
	movieID, err := parseID("movie", id)
	if err != nil {
		return nil, err
	}
	genreIDs, actorIDs, err := movieLinks(req)
	if err != nil {
		return nil, err
	}

	movie := &entity.Movie{
		Base:        entity.Base{ID: movieID, UpdatedAt: time.Now().UTC()},
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
	}
	if err := s.movies.Update(ctx, movie, genreIDs, actorIDs); err != nil {
		return nil, err
	}

	s.log.Info("Movie updated", zap.String("movie_id", id))
	return s.GetMovieByID(ctx, id)
}

func (s *movieService) DeleteMovie(ctx context.Context, id string) error {
	movieID, err := parseID("movie", id)
	if err != nil {
		return err
	}

	if err := s.movies.Delete(ctx, movieID); err != nil {
		return err
	}

	s.log.Info("Movie deleted", zap.String("movie_id", id))
	return nil
}

func movieLinks(req *request.MovieRequest) (genreIDs, actorIDs []uuid.UUID, err error) {
	if genreIDs, err = parseIDs("genre", req.Genres); err != nil {
		return nil, nil, err
	}
	if actorIDs, err = parseIDs("actor", req.Actors); err != nil {
		return nil, nil, err
	}
	return genreIDs, actorIDs, nil
}
