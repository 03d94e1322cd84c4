package usecase

import (
	"context"

	"cinema-reservation/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockScreeningRepo struct{ mock.Mock }

func (m *mockScreeningRepo) Create(ctx context.Context, s *entity.Screening) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockScreeningRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Screening, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*entity.Screening)
	return s, args.Error(1)
}

func (m *mockScreeningRepo) FindAll(ctx context.Context, filter entity.ScreeningFilter) ([]*entity.ScreeningSummary, error) {
	args := m.Called(ctx, filter)
	s, _ := args.Get(0).([]*entity.ScreeningSummary)
	return s, args.Error(1)
}

func (m *mockScreeningRepo) Update(ctx context.Context, s *entity.Screening) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockScreeningRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockMovieRepo struct{ mock.Mock }

func (m *mockMovieRepo) Create(ctx context.Context, movie *entity.Movie, genreIDs, actorIDs []uuid.UUID) error {
	return m.Called(ctx, movie, genreIDs, actorIDs).Error(0)
}

func (m *mockMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	args := m.Called(ctx, id)
	if fn, ok := args.Get(0).(func(uuid.UUID) *entity.Movie); ok {
		return fn(id), args.Error(1)
	}
	movie, _ := args.Get(0).(*entity.Movie)
	return movie, args.Error(1)
}

func (m *mockMovieRepo) FindAll(ctx context.Context, filter entity.MovieFilter) ([]*entity.Movie, error) {
	args := m.Called(ctx, filter)
	movies, _ := args.Get(0).([]*entity.Movie)
	return movies, args.Error(1)
}

func (m *mockMovieRepo) Update(ctx context.Context, movie *entity.Movie, genreIDs, actorIDs []uuid.UUID) error {
	return m.Called(ctx, movie, genreIDs, actorIDs).Error(0)
}

func (m *mockMovieRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockHallRepo struct{ mock.Mock }

func (m *mockHallRepo) Create(ctx context.Context, hall *entity.Hall) error {
	return m.Called(ctx, hall).Error(0)
}

func (m *mockHallRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hall, error) {
	args := m.Called(ctx, id)
	h, _ := args.Get(0).(*entity.Hall)
	return h, args.Error(1)
}

func (m *mockHallRepo) FindAll(ctx context.Context) ([]*entity.Hall, error) {
	args := m.Called(ctx)
	h, _ := args.Get(0).([]*entity.Hall)
	return h, args.Error(1)
}

func (m *mockHallRepo) Update(ctx context.Context, hall *entity.Hall) error {
	return m.Called(ctx, hall).Error(0)
}

func (m *mockHallRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
