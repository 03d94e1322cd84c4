// internal/wire/wire.go
package wire

import (
	"net/http"

	"cinema-reservation/internal/adaptor"
	"cinema-reservation/internal/data/repository"
	"cinema-reservation/internal/usecase"
	"cinema-reservation/pkg/metrics"
	"cinema-reservation/pkg/middleware"
	"cinema-reservation/pkg/ratelimit"
	"cinema-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Deps carries the process-wide collaborators shared by every route.
type Deps struct {
	Limiter *ratelimit.Limiter
	Metrics *metrics.Metrics
}

func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger, deps Deps) *App {
	service := usecase.NewService(repo, config, deps.Metrics, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger, deps)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
	deps Deps,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(otelchi.Middleware(config.App.Name, otelchi.WithChiRoutes(r)))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Metrics(deps.Metrics))

	wireGenre(r, handler.Genre, handler.Actor, repo, config, logger)
	wireHall(r, handler.Hall, repo, config, logger)
	wireMovie(r, handler.Movie, repo, config, logger)
	wireScreening(r, handler.Screening, repo, config, logger)
	wireOrder(r, handler.Order, repo, deps.Limiter, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())

	return r
}
