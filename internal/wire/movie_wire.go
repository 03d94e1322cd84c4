package wire

import (
	"cinema-reservation/internal/adaptor"
	"cinema-reservation/internal/data/repository"
	"cinema-reservation/pkg/middleware"
	"cinema-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/movies?genres=&actors=&title=
	r.Get("/api/movies", movieHandler.GetMovies)
	r.Get("/api/movies/{id}", movieHandler.GetMovieByID)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/movies", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/", movieHandler.CreateMovie)       // POST /api/admin/movies
		r.Put("/{id}", movieHandler.UpdateMovie)    // PUT /api/admin/movies/{id}
		r.Delete("/{id}", movieHandler.DeleteMovie) // DELETE /api/admin/movies/{id}
	})
}
