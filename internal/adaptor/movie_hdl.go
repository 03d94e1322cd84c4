package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"cinema-reservation/internal/data/entity"
	"cinema-reservation/internal/dto/request"
	"cinema-reservation/internal/usecase"
	"cinema-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /api/movies?genres=<ids>&actors=<ids>&title=<text>
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := entity.MovieFilter{Title: strings.TrimSpace(query.Get("title"))}

	var err error
	if filter.GenreIDs, err = parseIDList(query.Get("genres")); err != nil {
		utils.ResponseBadRequest(w, "Validation failed", map[string]string{"genres": "Must be comma-separated UUIDs"})
		return
	}
	if filter.ActorIDs, err = parseIDList(query.Get("actors")); err != nil {
		utils.ResponseBadRequest(w, "Validation failed", map[string]string{"actors": "Must be comma-separated UUIDs"})
		return
	}

	movies, err := h.service.GetMovies(r.Context(), filter)
	if err != nil {
		writeError(w, h.log, "get movies", err)
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// GetMovieByID handles GET /api/movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movie, err := h.service.GetMovieByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.log, "get movie", err)
		return
	}

	utils.ResponseSuccess(w, "success", movie)
}

// CreateMovie handles POST /api/admin/movies
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, "create movie", err)
		return
	}

	utils.ResponseCreated(w, "Movie created successfully", movie)
}

// UpdateMovie handles PUT /api/admin/movies/{id}
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movie, err := h.service.UpdateMovie(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		writeError(w, h.log, "update movie", err)
		return
	}

	utils.ResponseSuccess(w, "Movie updated successfully", movie)
}

// DeleteMovie handles DELETE /api/admin/movies/{id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteMovie(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, h.log, "delete movie", err)
		return
	}

	utils.ResponseSuccess(w, "Movie deleted successfully", nil)
}

func parseIDList(raw string) ([]uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var ids []uuid.UUID
	for _, part := range strings.Split(raw, ",") {
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
