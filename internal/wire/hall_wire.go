package wire

import (
	"cinema-reservation/internal/adaptor"
	"cinema-reservation/internal/data/repository"
	"cinema-reservation/pkg/middleware"
	"cinema-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireHall(
	r chi.Router,
	hallHandler *adaptor.HallHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/halls", hallHandler.GetHalls)
	r.Get("/api/halls/{id}", hallHandler.GetHallByID)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/halls", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/", hallHandler.CreateHall)
		r.Put("/{id}", hallHandler.UpdateHall) // 409 when sold seats fall outside the new grid
		r.Delete("/{id}", hallHandler.DeleteHall)
	})
}
