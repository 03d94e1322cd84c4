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

type ActorHandler struct {
	service usecase.ActorService
	log     *zap.Logger
}

func NewActorHandler(service usecase.ActorService, log *zap.Logger) *ActorHandler {
	return &ActorHandler{
		service: service,
		log:     log.With(zap.String("handler", "actor")),
	}
}

// GetActors handles GET /api/actors
func (h *ActorHandler) GetActors(w http.ResponseWriter, r *http.Request) {
	actors, err := h.service.GetActors(r.Context())
	if err != nil {
		writeError(w, h.log, "get actors", err)
		return
	}

	utils.ResponseSuccess(w, "success", actors)
}

// CreateActor handles POST /api/admin/actors
func (h *ActorHandler) CreateActor(w http.ResponseWriter, r *http.Request) {
	var req request.ActorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	actor, err := h.service.CreateActor(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, "create actor", err)
		return
	}

	utils.ResponseCreated(w, "Actor created successfully", actor)
}

// UpdateActor handles PUT /api/admin/actors/{id}
func (h *ActorHandler) UpdateActor(w http.ResponseWriter, r *http.Request) {
	var req request.ActorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	actor, err := h.service.UpdateActor(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		writeError(w, h.log, "update actor", err)
		return
	}

	utils.ResponseSuccess(w, "Actor updated successfully", actor)
}

// DeleteActor handles DELETE /api/admin/actors/{id}
func (h *ActorHandler) DeleteActor(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteActor(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, h.log, "delete actor", err)
		return
	}

	utils.ResponseSuccess(w, "Actor deleted successfully", nil)
}
