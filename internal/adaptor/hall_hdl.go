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

type HallHandler struct {
	service usecase.HallService
	log     *zap.Logger
}

func NewHallHandler(service usecase.HallService, log *zap.Logger) *HallHandler {
	return &HallHandler{
		service: service,
		log:     log.With(zap.String("handler", "hall")),
	}
}

// GetHalls handles GET /api/halls
func (h *HallHandler) GetHalls(w http.ResponseWriter, r *http.Request) {
	halls, err := h.service.GetHalls(r.Context())
	if err != nil {
		writeError(w, h.log, "get halls", err)
		return
	}

	utils.ResponseSuccess(w, "success", halls)
}

// GetHallByID handles GET /api/halls/{id}
func (h *HallHandler) GetHallByID(w http.ResponseWriter, r *http.Request) {
	hall, err := h.service.GetHallByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.log, "get hall", err)
		return
	}

	utils.ResponseSuccess(w, "success", hall)
}

// CreateHall handles POST /api/admin/halls
func (h *HallHandler) CreateHall(w http.ResponseWriter, r *http.Request) {
	var req request.HallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	hall, err := h.service.CreateHall(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, "create hall", err)
		return
	}

	utils.ResponseCreated(w, "Hall created successfully", hall)
}

// UpdateHall handles PUT /api/admin/halls/{id}
func (h *HallHandler) UpdateHall(w http.ResponseWriter, r *http.Request) {
	var req request.HallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	hall, err := h.service.UpdateHall(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		writeError(w, h.log, "update hall", err)
		return
	}

	utils.ResponseSuccess(w, "Hall updated successfully", hall)
}

// DeleteHall handles DELETE /api/admin/halls/{id}
func (h *HallHandler) DeleteHall(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteHall(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, h.log, "delete hall", err)
		return
	}

	utils.ResponseSuccess(w, "Hall deleted successfully", nil)
}
