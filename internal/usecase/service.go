package usecase

import (
	"cinema-reservation/internal/data/repository"
	"cinema-reservation/pkg/metrics"
	"cinema-reservation/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Order     OrderService
	Screening ScreeningService
	Movie     MovieService
	Hall      HallService
	Genre     GenreService
	Actor     ActorService
}

func NewService(repo *repository.Repository, config *utils.Config, m *metrics.Metrics, log *zap.Logger) *Service {
	return &Service{
		Order:     NewOrderService(repo.Ticket, repo.Order, config.Orders, m, log),
		Screening: NewScreeningService(repo.Screening, repo.Movie, repo.Ticket, log),
		Movie:     NewMovieService(repo.Movie, log),
		Hall:      NewHallService(repo.Hall, log),
		Genre:     NewGenreService(repo.Genre, log),
		Actor:     NewActorService(repo.Actor, log),
	}
}
