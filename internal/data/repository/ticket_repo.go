package repository

import (
	"context"
	"fmt"

	"cinema-reservation/internal/data/entity"
	"cinema-reservation/internal/reservation"
	"cinema-reservation/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// TicketLedger is the record of sold seats. All writes go through InTx so
// an order and its tickets commit or roll back together.
type TicketLedger interface {
	InTx(ctx context.Context, fn func(tx LedgerTx) error) error
	TakenPositions(ctx context.Context, screeningID uuid.UUID) ([]reservation.Position, error)
}

// LedgerTx is the view of the ledger inside one transaction.
type LedgerTx interface {
	// LockScreenings returns the screenings that exist among ids, keyed by id,
	// with their halls attached. Screening and hall rows stay share-locked
	// until the transaction ends so geometry cannot change underneath.
	LockScreenings(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Screening, error)
	// LockOrder returns the order if it belongs to userID, or nil.
	LockOrder(ctx context.Context, orderID, userID uuid.UUID) (*entity.Order, error)
	// LockOrderOfTicket returns the order owning ticketID if it belongs to userID, or nil.
	LockOrderOfTicket(ctx context.Context, ticketID, userID uuid.UUID) (*entity.Order, error)
	CreateOrder(ctx context.Context, order *entity.Order) error
	// AddTicket inserts one ticket. A taken position yields *reservation.DuplicateSeatError.
	AddTicket(ctx context.Context, ticket *entity.Ticket) error
	RemoveTicket(ctx context.Context, ticketID uuid.UUID) (*entity.Ticket, error)
	CountTickets(ctx context.Context, orderID uuid.UUID) (int, error)
	// DeleteOrder removes the order's tickets, then the order.
	DeleteOrder(ctx context.Context, orderID uuid.UUID) error
}

type ticketLedger struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketLedger(db database.PgxIface, log *zap.Logger) TicketLedger {
	return &ticketLedger{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

func (r *ticketLedger) InTx(ctx context.Context, fn func(tx LedgerTx) error) error {
	return runInTx(ctx, r.db, func(tx pgx.Tx) error {
		return fn(&ledgerTx{tx: tx, log: r.log})
	})
}

func (r *ticketLedger) TakenPositions(ctx context.Context, screeningID uuid.UUID) ([]reservation.Position, error) {
	query := `
		SELECT row_num, seat_num
		FROM tickets
		WHERE screening_id = $1
		ORDER BY row_num, seat_num
	`

	rows, err := r.db.Query(ctx, query, screeningID)
	if err != nil {
		r.log.Error("Failed to list taken positions",
			zap.Error(err),
			zap.String("screening_id", screeningID.String()),
		)
		return nil, fmt.Errorf("list taken positions for %s: %w", screeningID.String(), err)
	}

	positions, err := pgx.CollectRows(rows, pgx.RowToStructByPos[reservation.Position])
	if err != nil {
		return nil, fmt.Errorf("scan taken positions: %w", err)
	}

	return positions, nil
}

type ledgerTx struct {
	tx  pgx.Tx
	log *zap.Logger
}

func (l *ledgerTx) LockScreenings(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Screening, error) {
	query := `
		SELECT s.id, s.show_time, s.movie_id, s.hall_id, s.created_at, s.updated_at,
		       h.id, h.name, h.rows, h.seats_per_row, h.created_at, h.updated_at
		FROM screenings s
		JOIN halls h ON h.id = s.hall_id
		WHERE s.id = ANY($1::uuid[])
		ORDER BY s.id
		FOR SHARE OF s, h
	`

	rows, err := l.tx.Query(ctx, query, uuidStrings(ids))
	if err != nil {
		return nil, fmt.Errorf("lock screenings: %w", err)
	}
	defer rows.Close()

	screenings := make(map[uuid.UUID]*entity.Screening, len(ids))
	for rows.Next() {
		s, err := scanScreeningWithHall(rows)
		if err != nil {
			return nil, fmt.Errorf("scan locked screening: %w", err)
		}
		screenings[s.ID] = s
	}

	return screenings, rows.Err()
}

func (l *ledgerTx) LockOrder(ctx context.Context, orderID, userID uuid.UUID) (*entity.Order, error) {
	query := `
		SELECT id, user_id, created_at
		FROM orders
		WHERE id = $1 AND user_id = $2
		FOR UPDATE
	`
	return l.lockOrder(ctx, query, orderID, userID)
}

func (l *ledgerTx) LockOrderOfTicket(ctx context.Context, ticketID, userID uuid.UUID) (*entity.Order, error) {
	query := `
		SELECT o.id, o.user_id, o.created_at
		FROM orders o
		JOIN tickets t ON t.order_id = o.id
		WHERE t.id = $1 AND o.user_id = $2
		FOR UPDATE OF o
	`
	return l.lockOrder(ctx, query, ticketID, userID)
}

func (l *ledgerTx) lockOrder(ctx context.Context, query string, id, userID uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := l.tx.QueryRow(ctx, query, id, userID).Scan(&order.ID, &order.UserID, &order.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lock order: %w", err)
	}
	return &order, nil
}

func (l *ledgerTx) CreateOrder(ctx context.Context, order *entity.Order) error {
	_, err := l.tx.Exec(ctx,
		`INSERT INTO orders (id, user_id, created_at) VALUES ($1, $2, $3)`,
		order.ID, order.UserID, order.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order %s: %w", order.ID.String(), err)
	}
	return nil
}

func (l *ledgerTx) AddTicket(ctx context.Context, ticket *entity.Ticket) error {
	query := `
		INSERT INTO tickets (id, order_id, screening_id, row_num, seat_num, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := l.tx.Exec(ctx, query,
		ticket.ID,
		ticket.OrderID,
		ticket.ScreeningID,
		ticket.Row,
		ticket.Seat,
		ticket.CreatedAt,
	)

	if constraint, dup := uniqueViolation(err); dup && constraint == ticketSeatConstraint {
		l.log.Info("Seat already taken",
			zap.String("screening_id", ticket.ScreeningID.String()),
			zap.Int("row", ticket.Row),
			zap.Int("seat", ticket.Seat),
		)
		return &reservation.DuplicateSeatError{ScreeningID: ticket.ScreeningID, Position: ticket.Position()}
	}
	if err != nil {
		return fmt.Errorf("insert ticket %s: %w", ticket.Position(), err)
	}

	return nil
}

func (l *ledgerTx) RemoveTicket(ctx context.Context, ticketID uuid.UUID) (*entity.Ticket, error) {
	query := `
		DELETE FROM tickets
		WHERE id = $1
		RETURNING id, order_id, screening_id, row_num, seat_num, created_at
	`

	var t entity.Ticket
	err := l.tx.QueryRow(ctx, query, ticketID).Scan(
		&t.ID,
		&t.OrderID,
		&t.ScreeningID,
		&t.Row,
		&t.Seat,
		&t.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete ticket %s: %w", ticketID.String(), err)
	}

	return &t, nil
}

func (l *ledgerTx) CountTickets(ctx context.Context, orderID uuid.UUID) (int, error) {
	var n int
	err := l.tx.QueryRow(ctx, `SELECT COUNT(*) FROM tickets WHERE order_id = $1`, orderID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count tickets of order %s: %w", orderID.String(), err)
	}
	return n, nil
}

func (l *ledgerTx) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	if _, err := l.tx.Exec(ctx, `DELETE FROM tickets WHERE order_id = $1`, orderID); err != nil {
		return fmt.Errorf("delete tickets of order %s: %w", orderID.String(), err)
	}
	if _, err := l.tx.Exec(ctx, `DELETE FROM orders WHERE id = $1`, orderID); err != nil {
		return fmt.Errorf("delete order %s: %w", orderID.String(), err)
	}
	return nil
}
