package repository

import (
	"context"
	"fmt"

	"cinema-reservation/internal/data/entity"
	"cinema-reservation/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// OrderRepository reads orders. Writes belong to TicketLedger.
type OrderRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, int64, error)
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Order, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

// FindByUser returns one page of the user's orders, newest first, with the
// total number of orders the user has.
func (r *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, int64, error) {
	query := `
		SELECT id, user_id, created_at, COUNT(*) OVER()
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to list orders",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, 0, fmt.Errorf("list orders of user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var total int64
	var orders []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.CreatedAt, &total); err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, 0, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate order rows: %w", err)
	}

	if len(orders) == 0 && offset > 0 {
		// past the last page, the window count is unavailable
		if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("count orders of user %s: %w", userID.String(), err)
		}
	}

	if err := r.attachTickets(ctx, orders); err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// FindByIDForUser returns nil when the order does not exist or belongs to
// another user.
func (r *orderRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Order, error) {
	var o entity.Order
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, created_at FROM orders WHERE id = $1 AND user_id = $2`,
		id, userID).Scan(&o.ID, &o.UserID, &o.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("find order %s: %w", id.String(), err)
	}

	if err := r.attachTickets(ctx, []*entity.Order{&o}); err != nil {
		return nil, err
	}

	return &o, nil
}

func (r *orderRepository) attachTickets(ctx context.Context, orders []*entity.Order) error {
	if len(orders) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*entity.Order, len(orders))
	ids := make([]uuid.UUID, len(orders))
	for i, o := range orders {
		byID[o.ID] = o
		ids[i] = o.ID
	}

	query := `
		SELECT t.id, t.order_id, t.screening_id, t.row_num, t.seat_num, t.created_at,
		       s.show_time, m.id, m.title, h.id, h.name, h.rows, h.seats_per_row,
		       (SELECT COUNT(*) FROM tickets x WHERE x.screening_id = s.id)
		FROM tickets t
		JOIN screenings s ON s.id = t.screening_id
		JOIN movies m ON m.id = s.movie_id
		JOIN halls h ON h.id = s.hall_id
		WHERE t.order_id = ANY($1::uuid[])
		ORDER BY s.show_time, t.row_num, t.seat_num
	`

	rows, err := r.db.Query(ctx, query, uuidStrings(ids))
	if err != nil {
		r.log.Error("Failed to load order tickets", zap.Error(err))
		return fmt.Errorf("load order tickets: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t entity.Ticket
		var s entity.ScreeningSummary
		err := rows.Scan(
			&t.ID,
			&t.OrderID,
			&t.ScreeningID,
			&t.Row,
			&t.Seat,
			&t.CreatedAt,
			&s.ShowTime,
			&s.MovieID,
			&s.MovieTitle,
			&s.HallID,
			&s.HallName,
			&s.Geometry.Rows,
			&s.Geometry.SeatsPerRow,
			&s.Sold,
		)
		if err != nil {
			return fmt.Errorf("scan order ticket: %w", err)
		}
		s.ID = t.ScreeningID
		t.Screening = &s
		byID[t.OrderID].Tickets = append(byID[t.OrderID].Tickets, t)
	}

	return rows.Err()
}
