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

type ActorService interface {
	GetActors(ctx context.Context) ([]response.ActorResponse, error)
	CreateActor(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error)
	UpdateActor(ctx context.Context, id string, req *request.ActorRequest) (*response.ActorResponse, error)
	DeleteActor(ctx context.Context, id string) error
}

type actorService struct {
	actors repository.ActorRepository
	log    *zap.Logger
}

func NewActorService(actors repository.ActorRepository, log *zap.Logger) ActorService {
	return &actorService{
		actors: actors,
		log:    log.With(zap.String("service", "actor")),
	}
}

func (s *actorService) GetActors(ctx context.Context) ([]response.ActorResponse, error) {
	actors, err := s.actors.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list actors", zap.Error(err))
		return nil, fmt.Errorf("list actors: %w", err)
	}

	items := make([]response.ActorResponse, len(actors))
	for i, g := range actors {
		items[i] = response.ActorToResponse(g)
	}
	return items, nil
}

func (s *actorService) CreateActor(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error) {
	actor := &entity.Actor{ID: uuid.New(), FirstName: req.FirstName, LastName: req.LastName}
	if err := s.actors.Create(ctx, actor); err != nil {
		return nil, err
	}

	s.log.Info("Actor created", zap.String("actor_id", actor.ID.String()), zap.String("name", actor.FullName()))
	resp := response.ActorToResponse(actor)
	return &resp, nil
}

func (s *actorService) UpdateActor(ctx context.Context, id string, req *request.ActorRequest) (*response.ActorResponse, error) {
	actorID, err := parseID("actor", id)
	if err != nil {
		return nil, err
	}

	actor := &entity.Actor{ID: actorID, FirstName: req.FirstName, LastName: req.LastName}
	if err := s.actors.Update(ctx, actor); err != nil {
		return nil, err
	}

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

func (s *actorService) DeleteActor(ctx context.Context, id string) error {
	actorID, err := parseID("actor", id)
	if err != nil {
		return err
	}
	return s.actors.Delete(ctx, actorID)
}
