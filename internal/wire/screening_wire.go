package wire

import (
	"cinema-reservation/internal/adaptor"
	"cinema-reservation/internal/data/repository"
	"cinema-reservation/pkg/middleware"
	"cinema-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireScreening(
	r chi.Router,
	screeningHandler *adaptor.ScreeningHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/screenings?date=YYYY-MM-DD&movie=<uuid>
	r.Get("/api/screenings", screeningHandler.GetScreenings)
	r.Get("/api/screenings/{id}", screeningHandler.GetScreeningByID)
	r.Get("/api/screenings/{id}/seats", screeningHandler.GetTakenSeats)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/screenings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/", screeningHandler.CreateScreening)
		r.Put("/{id}", screeningHandler.UpdateScreening)
		r.Delete("/{id}", screeningHandler.DeleteScreening)
	})
}
