package adaptor

import (
	"strconv"

	"cinema-reservation/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Order     *OrderHandler
	Screening *ScreeningHandler
	Movie     *MovieHandler
	Hall      *HallHandler
	Genre     *GenreHandler
	Actor     *ActorHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Order:     NewOrderHandler(service.Order, log),
		Screening: NewScreeningHandler(service.Screening, log),
		Movie:     NewMovieHandler(service.Movie, log),
		Hall:      NewHallHandler(service.Hall, log),
		Genre:     NewGenreHandler(service.Genre, log),
		Actor:     NewActorHandler(service.Actor, log),
	}
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
