package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-reservation/internal/dto/request"
	"cinema-reservation/internal/usecase"
	"cinema-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type GenreHandler struct {
	service usecase.GenreService
	log     *zap.Logger
}

func NewGenreHandler(service usecase.GenreService, log *zap.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		log:     log.With(zap.String("handler", "genre")),
	}
}

// GetGenres handles GET /api/genres
func (h *GenreHandler) GetGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.GetGenres(r.Context())
	if err != nil {
		writeError(w, h.log, "get genres", err)
		return
	}

	utils.ResponseSuccess(w, "success", genres)
}

// CreateGenre handles POST /api/admin/genres
func (h *GenreHandler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var req request.GenreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	genre, err := h.service.CreateGenre(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, "create genre", err)
		return
	}

	utils.ResponseCreated(w, "Genre created successfully", genre)
}

// UpdateGenre handles PUT /api/admin/genres/{id}
func (h *GenreHandler) UpdateGenre(w http.ResponseWriter, r *http.Request) {
	var req request.GenreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	genre, err := h.service.UpdateGenre(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		writeError(w, h.log, "update genre", err)
		return
	}

	utils.ResponseSuccess(w, "Genre updated successfully", genre)
}

// DeleteGenre handles DELETE /api/admin/genres/{id}
func (h *GenreHandler) DeleteGenre(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteGenre(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, h.log, "delete genre", err)
		return
	}

	utils.ResponseSuccess(w, "Genre deleted successfully", nil)
}
