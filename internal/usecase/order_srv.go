package usecase

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"cinema-reservation/internal/data/entity"
	"cinema-reservation/internal/data/repository"
	"cinema-reservation/internal/dto/request"
	"cinema-reservation/internal/dto/response"
	"cinema-reservation/internal/reservation"
	"cinema-reservation/pkg/metrics"
	"cinema-reservation/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	// CreateOrder books every requested seat or none of them.
	CreateOrder(ctx context.Context, userID uuid.UUID, req *request.OrderRequest) (*response.OrderResponse, error)
	GetOrders(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error)
	GetOrderByID(ctx context.Context, userID uuid.UUID, orderID string) (*response.OrderResponse, error)
	DeleteOrder(ctx context.Context, userID uuid.UUID, orderID string) error

	AddTicket(ctx context.Context, userID uuid.UUID, orderID string, req *request.TicketRequest) (*response.TicketResponse, error)
	// RemoveTicket releases one seat. An order left without tickets is deleted.
	RemoveTicket(ctx context.Context, userID uuid.UUID, ticketID string) error
}

type orderService struct {
	ledger  repository.TicketLedger
	orders  repository.OrderRepository
	config  utils.OrdersConfig
	metrics *metrics.Metrics
	log     *zap.Logger
	now     func() time.Time
}

func NewOrderService(ledger repository.TicketLedger, orders repository.OrderRepository, config utils.OrdersConfig, m *metrics.Metrics, log *zap.Logger) OrderService {
	return &orderService{
		ledger:  ledger,
		orders:  orders,
		config:  config,
		metrics: m,
		log:     log.With(zap.String("service", "order")),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, req *request.OrderRequest) (*response.OrderResponse, error) {
	selections, err := toSelections(req.Tickets)
	if err != nil {
		s.reject(err)
		return nil, err
	}
	if len(selections) == 0 {
		s.reject(reservation.ErrEmptySelection)
		return nil, reservation.ErrEmptySelection
	}

	now := s.now()
	order := entity.NewOrder(userID, now)
	tickets := make([]*entity.Ticket, len(selections))
	for i, sel := range selections {
		tickets[i] = entity.NewTicket(order.ID, sel, now)
	}

	err = s.ledger.InTx(ctx, func(tx repository.LedgerTx) error {
		if err := tx.CreateOrder(ctx, order); err != nil {
			return err
		}

		screenings, err := tx.LockScreenings(ctx, screeningIDs(selections))
		if err != nil {
			return err
		}
		if err := reservation.CheckSelections(selections, geometryOf(screenings)); err != nil {
			return err
		}

		for _, i := range insertOrder(selections) {
			if err := tx.AddTicket(ctx, tickets[i]); err != nil {
				return attributeTicketError(i, err)
			}
		}
		return nil
	})
	if err != nil {
		s.reject(err)
		return nil, err
	}

	s.metrics.OrderCreated(len(selections))
	s.log.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Int("tickets", len(selections)),
	)

	resp, err := s.GetOrderByID(ctx, userID, order.ID.String())
	if err != nil {
		// the order is committed; answer without screening summaries
		s.log.Warn("Failed to read back created order",
			zap.String("order_id", order.ID.String()),
			zap.Error(err),
		)
		for _, t := range tickets {
			order.Tickets = append(order.Tickets, *t)
		}
		created, _ := orderToResponse(order)
		return &created, nil
	}
	return resp, nil
}

func (s *orderService) GetOrders(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	page := max(req.Page, 1)
	perPage := utils.ClampPerPage(req.PerPage, s.config.PageSize, s.config.MaxPageSize)
	paging := request.PaginatedRequest{Page: page, PerPage: perPage}

	orders, total, err := s.orders.FindByUser(ctx, userID, paging.Limit(), paging.Offset())
	if err != nil {
		s.log.Error("Failed to list orders", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, fmt.Errorf("list orders: %w", err)
	}

	items := make([]response.OrderResponse, 0, len(orders))
	for _, o := range orders {
		item, err := orderToResponse(o)
		if err != nil {
			s.log.Error("Inconsistent order", zap.String("order_id", o.ID.String()), zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}

	return response.NewPaginatedResponse(items, page, perPage, total), nil
}

func (s *orderService) GetOrderByID(ctx context.Context, userID uuid.UUID, orderID string) (*response.OrderResponse, error) {
	id, err := parseID("order", orderID)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.FindByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("find order %s: %w", id, err)
	}
	if order == nil {
		return nil, &reservation.NotFoundError{Entity: "order", ID: orderID}
	}

	resp, err := orderToResponse(order)
	if err != nil {
		s.log.Error("Inconsistent order", zap.String("order_id", orderID), zap.Error(err))
		return nil, err
	}
	return &resp, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, userID uuid.UUID, orderID string) error {
	id, err := parseID("order", orderID)
	if err != nil {
		return err
	}

	var released int
	err = s.ledger.InTx(ctx, func(tx repository.LedgerTx) error {
		order, err := tx.LockOrder(ctx, id, userID)
		if err != nil {
			return err
		}
		if order == nil {
			return &reservation.NotFoundError{Entity: "order", ID: orderID}
		}

		if released, err = tx.CountTickets(ctx, id); err != nil {
			return err
		}
		return tx.DeleteOrder(ctx, id)
	})
	if err != nil {
		return err
	}

	s.metrics.TicketReleased(released)
	s.log.Info("Order deleted", zap.String("order_id", orderID), zap.Int("tickets", released))
	return nil
}

func (s *orderService) AddTicket(ctx context.Context, userID uuid.UUID, orderID string, req *request.TicketRequest) (*response.TicketResponse, error) {
	id, err := parseID("order", orderID)
	if err != nil {
		return nil, err
	}
	selections, err := toSelections([]request.TicketRequest{*req})
	if err != nil {
		return nil, err
	}
	sel := selections[0]
	ticket := entity.NewTicket(id, sel, s.now())

	err = s.ledger.InTx(ctx, func(tx repository.LedgerTx) error {
		order, err := tx.LockOrder(ctx, id, userID)
		if err != nil {
			return err
		}
		if order == nil {
			return &reservation.NotFoundError{Entity: "order", ID: orderID}
		}

		screenings, err := tx.LockScreenings(ctx, []uuid.UUID{sel.ScreeningID})
		if err != nil {
			return err
		}
		if err := reservation.CheckSelections(selections, geometryOf(screenings)); err != nil {
			return err
		}

		if err := tx.AddTicket(ctx, ticket); err != nil {
			return attributeTicketError(0, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.TicketAdded()
	s.log.Info("Ticket added",
		zap.String("order_id", orderID),
		zap.String("ticket_id", ticket.ID.String()),
		zap.Stringer("position", ticket.Position()),
	)

	return &response.TicketResponse{ID: ticket.ID, Row: ticket.Row, Seat: ticket.Seat}, nil
}

func (s *orderService) RemoveTicket(ctx context.Context, userID uuid.UUID, ticketID string) error {
	id, err := parseID("ticket", ticketID)
	if err != nil {
		return err
	}

	var orderDeleted bool
	err = s.ledger.InTx(ctx, func(tx repository.LedgerTx) error {
		order, err := tx.LockOrderOfTicket(ctx, id, userID)
		if err != nil {
			return err
		}
		if order == nil {
			return &reservation.NotFoundError{Entity: "ticket", ID: ticketID}
		}

		removed, err := tx.RemoveTicket(ctx, id)
		if err != nil {
			return err
		}
		if removed == nil {
			return &reservation.NotFoundError{Entity: "ticket", ID: ticketID}
		}

		left, err := tx.CountTickets(ctx, order.ID)
		if err != nil {
			return err
		}
		if left == 0 {
			orderDeleted = true
			return tx.DeleteOrder(ctx, order.ID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.metrics.TicketReleased(1)
	s.log.Info("Ticket removed", zap.String("ticket_id", ticketID), zap.Bool("order_deleted", orderDeleted))
	return nil
}

func (s *orderService) reject(err error) {
	reason := rejectReason(err)
	s.metrics.OrderRejected(reason)
	if reason == metrics.ReasonInternal {
		s.log.Error("Order failed", zap.Error(err))
		return
	}
	s.log.Warn("Order rejected", zap.String("reason", reason), zap.Error(err))
}

func rejectReason(err error) string {
	var (
		rangeErr *reservation.OutOfRangeError
		dupErr   *reservation.DuplicateSeatError
		nfErr    *reservation.NotFoundError
	)
	switch {
	case errors.Is(err, reservation.ErrEmptySelection):
		return metrics.ReasonEmptySelection
	case errors.As(err, &rangeErr):
		return metrics.ReasonOutOfRange
	case errors.As(err, &dupErr):
		return metrics.ReasonDuplicateSeat
	case errors.As(err, &nfErr), errors.Is(err, ErrInvalidID):
		return metrics.ReasonNotFound
	default:
		return metrics.ReasonInternal
	}
}

// attributeTicketError ties a seat conflict found at insert time to the
// ticket that caused it.
func attributeTicketError(i int, err error) error {
	var dupErr *reservation.DuplicateSeatError
	if errors.As(err, &dupErr) {
		return &reservation.SelectionError{Index: i, Err: dupErr}
	}
	return fmt.Errorf("add ticket %d: %w", i, err)
}

// insertOrder returns the selection indexes sorted by screening, row and
// seat. Orders touching the same seats then claim them in the same order,
// so the loser waits on the winner and gets a unique violation instead of
// a deadlock.
func insertOrder(selections []reservation.Selection) []int {
	idx := make([]int, len(selections))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		x, y := selections[a], selections[b]
		if c := bytes.Compare(x.ScreeningID[:], y.ScreeningID[:]); c != 0 {
			return c
		}
		if c := cmp.Compare(x.Position.Row, y.Position.Row); c != 0 {
			return c
		}
		return cmp.Compare(x.Position.Seat, y.Position.Seat)
	})
	return idx
}

func toSelections(tickets []request.TicketRequest) ([]reservation.Selection, error) {
	selections := make([]reservation.Selection, len(tickets))
	for i, t := range tickets {
		id, err := parseID("screening", t.ScreeningID)
		if err != nil {
			return nil, &reservation.SelectionError{Index: i, Err: err}
		}
		selections[i] = reservation.Selection{
			ScreeningID: id,
			Position:    reservation.Position{Row: t.Row, Seat: t.Seat},
		}
	}
	return selections, nil
}

func screeningIDs(selections []reservation.Selection) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(selections))
	ids := make([]uuid.UUID, 0, len(selections))
	for _, sel := range selections {
		if _, ok := seen[sel.ScreeningID]; ok {
			continue
		}
		seen[sel.ScreeningID] = struct{}{}
		ids = append(ids, sel.ScreeningID)
	}
	return ids
}

func geometryOf(screenings map[uuid.UUID]*entity.Screening) func(uuid.UUID) (reservation.Geometry, bool) {
	return func(id uuid.UUID) (reservation.Geometry, bool) {
		s, ok := screenings[id]
		if !ok || s.Hall == nil {
			return reservation.Geometry{}, false
		}
		return s.Hall.Geometry(), true
	}
}
