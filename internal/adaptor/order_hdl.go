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

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.With(zap.String("handler", "order")),
	}
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	order, err := h.service.CreateOrder(r.Context(), userID, &req)
	if err != nil {
		writeError(w, h.log, "create order", err, req.Tickets...)
		return
	}

	utils.ResponseCreated(w, "Order created successfully", order)
}

// GetOrders handles GET /api/orders
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    parseInt(query.Get("page"), 1),
		PerPage: parseInt(query.Get("per_page"), 0),
	}

	orders, err := h.service.GetOrders(r.Context(), userID, req)
	if err != nil {
		writeError(w, h.log, "get orders", err)
		return
	}

	utils.ResponseSuccess(w, "success", orders)
}

// GetOrderByID handles GET /api/orders/{id}
func (h *OrderHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	order, err := h.service.GetOrderByID(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.log, "get order", err)
		return
	}

	utils.ResponseSuccess(w, "success", order)
}

// DeleteOrder handles DELETE /api/orders/{id}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.DeleteOrder(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, h.log, "delete order", err)
		return
	}

	utils.ResponseSuccess(w, "Order deleted successfully", nil)
}

// AddTicket handles POST /api/orders/{id}/tickets
func (h *OrderHandler) AddTicket(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.TicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	ticket, err := h.service.AddTicket(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		writeError(w, h.log, "add ticket", err, req)
		return
	}

	utils.ResponseCreated(w, "Ticket added successfully", ticket)
}

// RemoveTicket handles DELETE /api/tickets/{id}
func (h *OrderHandler) RemoveTicket(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.RemoveTicket(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, h.log, "remove ticket", err)
		return
	}

	utils.ResponseSuccess(w, "Ticket removed successfully", nil)
}
