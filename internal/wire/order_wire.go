package wire

import (
	"cinema-reservation/internal/adaptor"
	"cinema-reservation/internal/data/repository"
	"cinema-reservation/pkg/middleware"
	"cinema-reservation/pkg/ratelimit"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	repo *repository.Repository,
	limiter *ratelimit.Limiter,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// Writes that take seats share one per-user budget
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(limiter, log))

			r.Post("/api/orders", orderHandler.CreateOrder)
			r.Post("/api/orders/{id}/tickets", orderHandler.AddTicket)
		})

		// Only the caller's own orders are visible; others answer 404
		r.Get("/api/orders", orderHandler.GetOrders)
		r.Get("/api/orders/{id}", orderHandler.GetOrderByID)
		r.Delete("/api/orders/{id}", orderHandler.DeleteOrder)
		r.Delete("/api/tickets/{id}", orderHandler.RemoveTicket)
	})
}
