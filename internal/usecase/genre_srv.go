package usecase

import (
	"context"
	"fmt"

	"cinema-reservation/internal/data/entity"
	"cinema-reservation/internal/data/repository"
	"cinema-reservation/internal/dto/request"
	"cinema-reservation/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GenreService interface {
	GetGenres(ctx context.Context) ([]response.GenreResponse, error)
	CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error)
	UpdateGenre(ctx context.Context, id string, req *request.GenreRequest) (*response.GenreResponse, error)
	DeleteGenre(ctx context.Context, id string) error
}

type genreService struct {
	genres repository.GenreRepository
	log    *zap.Logger
}

func NewGenreService(genres repository.GenreRepository, log *zap.Logger) GenreService {
	return &genreService{
		genres: genres,
		log:    log.With(zap.String("service", "genre")),
	}
}

func (s *genreService) GetGenres(ctx context.Context) ([]response.GenreResponse, error) {
	genres, err := s.genres.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list genres", zap.Error(err))
		return nil, fmt.Errorf("list genres: %w", err)
	}

	items := make([]response.GenreResponse, len(genres))
	for i, g := range genres {
		items[i] = response.GenreToResponse(g)
	}
	return items, nil
}

func (s *genreService) CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error) {
	genre := &entity.Genre{ID: uuid.New(), Name: req.Name}
	if err := s.genres.Create(ctx, genre); err != nil {
		return nil, err
	}

	s.log.Info("Genre created", zap.String("genre_id", genre.ID.String()), zap.String("name", genre.Name))
	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) UpdateGenre(ctx context.Context, id string, req *request.GenreRequest) (*response.GenreResponse, error) {
	genreID, err := parseID("genre", id)
	if err != nil {
		return nil, err
	}

	genre := &entity.Genre{ID: genreID, Name: req.Name}
	if err := s.genres.Update(ctx, genre); err != nil {
		return nil, err
	}

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) DeleteGenre(ctx context.Context, id string) error {
	genreID, err := parseID("genre", id)
	if err != nil {
		return err
	}
	return s.genres.Delete(ctx, genreID)
}
