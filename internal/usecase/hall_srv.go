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

	"go.uber.org/zap"
)

type HallService interface {
	GetHalls(ctx context.Context) ([]response.HallResponse, error)
	GetHallByID(ctx context.Context, id string) (*response.HallResponse, error)

	// Admin
	CreateHall(ctx context.Context, req *request.HallRequest) (*response.HallResponse, error)
	// UpdateHall fails with reservation.ErrGeometryConflict when the new grid
	// would leave sold seats outside the hall.
	UpdateHall(ctx context.Context, id string, req *request.HallRequest) (*response.HallResponse, error)
	DeleteHall(ctx context.Context, id string) error
}

type hallService struct {
	halls repository.HallRepository
	log   *zap.Logger
}

func NewHallService(halls repository.HallRepository, log *zap.Logger) HallService {
	return &hallService{
		halls: halls,
		log:   log.With(zap.String("service", "hall")),
	}
}

func (s *hallService) GetHalls(ctx context.Context) ([]response.HallResponse, error) {
	halls, err := s.halls.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list halls", zap.Error(err))
		return nil, fmt.Errorf("list halls: %w", err)
	}

	items := make([]response.HallResponse, len(halls))
	for i, h := range halls {
		items[i] = response.HallToResponse(h)
	}
	return items, nil
}

func (s *hallService) GetHallByID(ctx context.Context, id string) (*response.HallResponse, error) {
	hallID, err := parseID("hall", id)
	if err != nil {
		return nil, err
	}

	hall, err := s.halls.FindByID(ctx, hallID)
	if err != nil {
		return nil, fmt.Errorf("find hall %s: %w", id, err)
	}
	if hall == nil {
		return nil, &reservation.NotFoundError{Entity: "hall", ID: id}
	}

	resp := response.HallToResponse(hall)
	return &resp, nil
}

func (s *hallService) CreateHall(ctx context.Context, req *request.HallRequest) (*response.HallResponse, error) {
	hall := &entity.Hall{
		Base:        entity.NewBase(time.Now().UTC()),
		Name:        req.Name,
		Rows:        req.Rows,
		SeatsPerRow: req.SeatsPerRow,
	}
	if err := s.halls.Create(ctx, hall); err != nil {
		return nil, err
	}

	s.log.Info("Hall created",
		zap.String("hall_id", hall.ID.String()),
		zap.Int("capacity", hall.Geometry().Capacity()),
	)
	resp := response.HallToResponse(hall)
	return &resp, nil
}

func (s *hallService) UpdateHall(ctx context.Context, id string, req *request.HallRequest) (*response.HallResponse, error) {
	hallID, err := parseID("hall", id)
	if err != nil {
		return nil, err
	}

	hall := &entity.Hall{
		Base:        entity.Base{ID: hallID, UpdatedAt: time.Now().UTC()},
		Name:        req.Name,
		Rows:        req.Rows,
		SeatsPerRow: req.SeatsPerRow,
	}
	if err := s.halls.Update(ctx, hall); err != nil {
		return nil, err
	}

	s.log.Info("Hall updated",
		zap.String("hall_id", id),
		zap.Int("rows", hall.Rows),
		zap.Int("seats_per_row", hall.SeatsPerRow),
	)
	resp := response.HallToResponse(hall)
	return &resp, nil
}

func (s *hallService) DeleteHall(ctx context.Context, id string) error {
	hallID, err := parseID("hall", id)
	if err != nil {
		return err
	}

	if err := s.halls.Delete(ctx, hallID); err != nil {
		return err
	}

	s.log.Info("Hall deleted", zap.String("hall_id", id))
	return nil
}
