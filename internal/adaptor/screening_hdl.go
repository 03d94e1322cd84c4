package adaptor

import (
	"encoding/json"
	"net/http"
	"time"

	"cinema-reservation/internal/data/entity"
	"cinema-reservation/internal/dto/request"
	"cinema-reservation/internal/usecase"
	"cinema-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type ScreeningHandler struct {
	service usecase.ScreeningService
	log     *zap.Logger
}

func NewScreeningHandler(service usecase.ScreeningService, log *zap.Logger) *ScreeningHandler {
	return &ScreeningHandler{
		service: service,
		log:     log.With(zap.String("handler", "screening")),
	}
}

// GetScreenings handles GET /api/screenings?date=YYYY-MM-DD&movie=<uuid>
func (h *ScreeningHandler) GetScreenings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	var filter entity.ScreeningFilter

	if raw := query.Get("date"); raw != "" {
		date, err := time.ParseInLocation(dateLayout, raw, time.UTC)
		if err != nil {
			utils.ResponseBadRequest(w, "Validation failed", map[string]string{"date": "Must be a date in YYYY-MM-DD format"})
			return
		}
		filter.Date = &date
	}

	if raw := query.Get("movie"); raw != "" {
		movieID, err := uuid.Parse(raw)
		if err != nil {
			utils.ResponseBadRequest(w, "Validation failed", map[string]string{"movie": "Must be a valid UUID"})
			return
		}
		filter.MovieID = &movieID
	}

	screenings, err := h.service.GetScreenings(r.Context(), filter)
	if err != nil {
		writeError(w, h.log, "get screenings", err)
		return
	}

	utils.ResponseSuccess(w, "success", screenings)
}

// GetScreeningByID handles GET /api/screenings/{id}
func (h *ScreeningHandler) GetScreeningByID(w http.ResponseWriter, r *http.Request) {
	screening, err := h.service.GetScreeningByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.log, "get screening", err)
		return
	}

	utils.ResponseSuccess(w, "success", screening)
}

// GetTakenSeats handles GET /api/screenings/{id}/seats
func (h *ScreeningHandler) GetTakenSeats(w http.ResponseWriter, r *http.Request) {
	seats, err := h.service.GetTakenSeats(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.log, "get taken seats", err)
		return
	}

	utils.ResponseSuccess(w, "success", seats)
}

// CreateScreening handles POST /api/admin/screenings
func (h *ScreeningHandler) CreateScreening(w http.ResponseWriter, r *http.Request) {
	var req request.ScreeningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	screening, err := h.service.CreateScreening(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, "create screening", err)
		return
	}

	utils.ResponseCreated(w, "Screening created successfully", screening)
}

// UpdateScreening handles PUT /api/admin/screenings/{id}
func (h *ScreeningHandler) UpdateScreening(w http.ResponseWriter, r *http.Request) {
	var req request.ScreeningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	screening, err := h.service.UpdateScreening(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		writeError(w, h.log, "update screening", err)
		return
	}

	utils.ResponseSuccess(w, "Screening updated successfully", screening)
}

// DeleteScreening handles DELETE /api/admin/screenings/{id}
func (h *ScreeningHandler) DeleteScreening(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteScreening(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, h.log, "delete screening", err)
		return
	}

	utils.ResponseSuccess(w, "Screening deleted successfully", nil)
}
