package wire

import (
	"cinema-reservation/internal/adaptor"
	"cinema-reservation/internal/data/repository"
	"cinema-reservation/pkg/middleware"
	"cinema-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireGenre(
	r chi.Router,
	genreHandler *adaptor.GenreHandler,
	actorHandler *adaptor.ActorHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/genres", genreHandler.GetGenres)
	r.Get("/api/actors", actorHandler.GetActors)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/genres", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/", genreHandler.CreateGenre)
		r.Put("/{id}", genreHandler.UpdateGenre)
		r.Delete("/{id}", genreHandler.DeleteGenre)
	})

	r.Route("/api/admin/actors", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/", actorHandler.CreateActor)
		r.Put("/{id}", actorHandler.UpdateActor)
		r.Delete("/{id}", actorHandler.DeleteActor)
	})
}
