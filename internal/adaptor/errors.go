package adaptor

import (
	"errors"
	"net/http"

	"cinema-reservation/internal/data/repository"
	"cinema-reservation/internal/dto/request"
	"cinema-reservation/internal/reservation"
	"cinema-reservation/internal/usecase"
	"cinema-reservation/pkg/utils"

	"go.uber.org/zap"
)

// TicketError points at one ticket of an order request.
type TicketError struct {
	Index   int    `json:"index"`
	Field   string `json:"field"`
	Message string `json:"message"`
	Row     int    `json:"row"`
	Seat    int    `json:"seat"`
}

// writeError maps service errors to responses. tickets is the request body
// the error refers to, used to echo the offending row and seat.
func writeError(w http.ResponseWriter, log *zap.Logger, operation string, err error, tickets ...request.TicketRequest) {
	var (
		selErr   *reservation.SelectionError
		rangeErr *reservation.OutOfRangeError
		dupErr   *reservation.DuplicateSeatError
		nfErr    *reservation.NotFoundError
	)

	switch {
	case errors.As(err, &selErr):
		item, ok := ticketError(selErr, tickets)
		if !ok {
			break
		}
		log.Warn(operation+" rejected", zap.Error(err), zap.Int("index", item.Index))
		utils.ResponseBadRequest(w, "Invalid ticket selection", []TicketError{item})
		return

	case errors.Is(err, reservation.ErrEmptySelection):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid ticket selection", map[string]string{"tickets": err.Error()})
		return

	case errors.As(err, &rangeErr), errors.As(err, &dupErr), errors.Is(err, usecase.ErrInvalidID):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)
		return

	case errors.Is(err, repository.ErrAlreadyExists):
		log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)
		return

	case errors.As(err, &nfErr):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, nfErr.Error())
		return

	case errors.Is(err, reservation.ErrGeometryConflict):
		log.Warn(operation+" failed - geometry conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())
		return
	}

	log.Error(operation+" failed", zap.Error(err))
	utils.ResponseInternalError(w, "Internal server error")
}

// ticketError reports false when the wrapped error is not a client error.
func ticketError(selErr *reservation.SelectionError, tickets []request.TicketRequest) (TicketError, bool) {
	item := TicketError{Index: selErr.Index, Message: selErr.Err.Error()}
	if selErr.Index >= 0 && selErr.Index < len(tickets) {
		item.Row = tickets[selErr.Index].Row
		item.Seat = tickets[selErr.Index].Seat
	}

	var (
		rangeErr *reservation.OutOfRangeError
		dupErr   *reservation.DuplicateSeatError
		nfErr    *reservation.NotFoundError
	)
	switch {
	case errors.As(selErr.Err, &rangeErr):
		item.Field = string(rangeErr.Field)
	case errors.As(selErr.Err, &dupErr):
		item.Field = string(reservation.FieldSeat)
	case errors.As(selErr.Err, &nfErr), errors.Is(selErr.Err, usecase.ErrInvalidID):
		item.Field = "screening"
	default:
		return TicketError{}, false
	}
	return item, true
}
