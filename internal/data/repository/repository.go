package repository

import (
	"cinema-reservation/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User      UserRepository
	Session   SessionRepository
	Genre     GenreRepository
	Actor     ActorRepository
	Movie     MovieRepository
	Hall      HallRepository
	Screening ScreeningRepository
	Order     OrderRepository
	Ticket    TicketLedger
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:      NewUserRepository(db, log),
		Session:   NewSessionRepository(db, log),
		Genre:     NewGenreRepository(db, log),
		Actor:     NewActorRepository(db, log),
		Movie:     NewMovieRepository(db, log),
		Hall:      NewHallRepository(db, log),
		Screening: NewScreeningRepository(db, log),
		Order:     NewOrderRepository(db, log),
		Ticket:    NewTicketLedger(db, log),
	}
}
