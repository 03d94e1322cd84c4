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

type ScreeningService interface {
	GetScreenings(ctx context.Context, filter entity.ScreeningFilter) ([]response.ScreeningListResponse, error)
	GetScreeningByID(ctx context.Context, id string) (*response.ScreeningDetailResponse, error)
	GetTakenSeats(ctx context.Context, id string) (*response.SeatMapResponse, error)

	// Admin
	CreateScreening(ctx context.Context, req *request.ScreeningRequest) (*response.ScreeningResponse, error)
	UpdateScreening(ctx context.Context, id string, req *request.ScreeningRequest) (*response.ScreeningResponse, error)
	DeleteScreening(ctx context.Context, id string) error
}

type screeningService struct {
	screenings repository.ScreeningRepository
	movies     repository.MovieRepository
	ledger     repository.TicketLedger
	log        *zap.Logger
}

func NewScreeningService(screenings repository.ScreeningRepository, movies repository.MovieRepository, ledger repository.TicketLedger, log *zap.Logger) ScreeningService {
	return &screeningService{
		screenings: screenings,
		movies:     movies,
		ledger:     ledger,
		log:        log.With(zap.String("service", "screening")),
	}
}

func (s *screeningService) GetScreenings(ctx context.Context, filter entity.ScreeningFilter) ([]response.ScreeningListResponse, error) {
	summaries, err := s.screenings.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list screenings", zap.Error(err))
		return nil, fmt.Errorf("list screenings: %w", err)
	}

	items := make([]response.ScreeningListResponse, 0, len(summaries))
	for _, summary := range summaries {
		item, err := screeningSummaryToResponse(summary)
		if err != nil {
			s.log.Error("Inconsistent screening", zap.String("screening_id", summary.ID.String()), zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *screeningService) GetScreeningByID(ctx context.Context, id string) (*response.ScreeningDetailResponse, error) {
	screening, err := s.findScreening(ctx, id)
	if err != nil {
		return nil, err
	}

	movie, err := s.movies.FindByID(ctx, screening.MovieID)
	if err != nil {
		return nil, fmt.Errorf("find movie %s: %w", screening.MovieID, err)
	}
	if movie == nil {
		return nil, &reservation.NotFoundError{Entity: "movie", ID: screening.MovieID.String()}
	}

	taken, err := s.ledger.TakenPositions(ctx, screening.ID)
	if err != nil {
		return nil, fmt.Errorf("taken positions of %s: %w", screening.ID, err)
	}

	return &response.ScreeningDetailResponse{
		ID:          screening.ID,
		ShowTime:    screening.ShowTime,
		Movie:       response.MovieToResponse(movie),
		Hall:        response.HallToResponse(screening.Hall),
		TakenPlaces: nonNil(taken),
	}, nil
}

func (s *screeningService) GetTakenSeats(ctx context.Context, id string) (*response.SeatMapResponse, error) {
	screening, err := s.findScreening(ctx, id)
	if err != nil {
		return nil, err
	}

	taken, err := s.ledger.TakenPositions(ctx, screening.ID)
	if err != nil {
		return nil, fmt.Errorf("taken positions of %s: %w", screening.ID, err)
	}

	return &response.SeatMapResponse{
		ScreeningID: screening.ID,
		Rows:        screening.Hall.Rows,
		SeatsPerRow: screening.Hall.SeatsPerRow,
		TakenPlaces: nonNil(taken),
	}, nil
}

func (s *screeningService) CreateScreening(ctx context.Context, req *request.ScreeningRequest) (*response.ScreeningResponse, error) {
	screening, err := screeningFromRequest(req)
	if err != nil {
		return nil, err
	}
	screening.Base = entity.NewBase(time.Now().UTC())

	if err := s.screenings.Create(ctx, screening); err != nil {
		return nil, err
	}

	s.log.Info("Screening created",
		zap.String("screening_id", screening.ID.String()),
		zap.Time("show_time", screening.ShowTime),
	)
	return screeningToResponse(screening), nil
}

func (s *screeningService) UpdateScreening(ctx context.Context, id string, req *request.ScreeningRequest) (*response.ScreeningResponse, error) {
	screeningID, err := parseID("screening", id)
	if err != nil {
		return nil, err
	}
	screening, err := screeningFromRequest(req)
	if err != nil {
		return nil, err
	}
	screening.ID = screeningID
	screening.UpdatedAt = time.Now().UTC()

	if err := s.screenings.Update(ctx, screening); err != nil {
		return nil, err
	}

	s.log.Info("Screening updated", zap.String("screening_id", id))
	return screeningToResponse(screening), nil
}

func (s *screeningService) DeleteScreening(ctx context.Context, id string) error {
	screeningID, err := parseID("screening", id)
	if err != nil {
		return err
	}

	if err := s.screenings.Delete(ctx, screeningID); err != nil {
		return err
	}

	s.log.Info("Screening deleted", zap.String("screening_id", id))
	return nil
}

func (s *screeningService) findScreening(ctx context.Context, id string) (*entity.Screening, error) {
	screeningID, err := parseID("screening", id)
	if err != nil {
		return nil, err
	}

	screening, err := s.screenings.FindByID(ctx, screeningID)
	if err != nil {
		return nil, fmt.Errorf("find screening %s: %w", id, err)
	}
	if screening == nil || screening.Hall == nil {
		return nil, &reservation.NotFoundError{Entity: "screening", ID: id}
	}
	return screening, nil
}

func screeningFromRequest(req *request.ScreeningRequest) (*entity.Screening, error) {
	movieID, err := parseID("movie", req.MovieID)
	if err != nil {
		return nil, err
	}
	hallID, err := parseID("hall", req.HallID)
	if err != nil {
		return nil, err
	}

	return &entity.Screening{
		ShowTime: req.ShowTime.UTC(),
		MovieID:  movieID,
		HallID:   hallID,
	}, nil
}

func screeningToResponse(s *entity.Screening) *response.ScreeningResponse {
	return &response.ScreeningResponse{
		ID:       s.ID,
		ShowTime: s.ShowTime,
		MovieID:  s.MovieID,
		HallID:   s.HallID,
	}
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
