package usecase

import (
	"context"
	"maps"
	"sync"

	"cinema-reservation/internal/data/entity"
	"cinema-reservation/internal/data/repository"
	"cinema-reservation/internal/reservation"

	"github.com/google/uuid"
)

type seatKey struct {
	screening uuid.UUID
	pos       reservation.Position
}

// fakeLedger runs transactions one at a time on a copy of its state and
// keeps the copy only when fn succeeds. The seat index plays the part of
// the unique constraint on tickets.
type fakeLedger struct {
	mu         sync.Mutex
	screenings map[uuid.UUID]*entity.Screening
	orders     map[uuid.UUID]*entity.Order
	tickets    map[uuid.UUID]*entity.Ticket
	seats      map[seatKey]uuid.UUID

	// beforeAdd runs before each ticket insert inside a transaction.
	beforeAdd func(t *entity.Ticket)
}

func newFakeLedger(screenings ...*entity.Screening) *fakeLedger {
	l := &fakeLedger{
		screenings: map[uuid.UUID]*entity.Screening{},
		orders:     map[uuid.UUID]*entity.Order{},
		tickets:    map[uuid.UUID]*entity.Ticket{},
		seats:      map[seatKey]uuid.UUID{},
	}
	for _, s := range screenings {
		l.screenings[s.ID] = s
	}
	return l
}

func newScreening(rows, seatsPerRow int) *entity.Screening {
	hall := &entity.Hall{Base: entity.Base{ID: uuid.New()}, Name: "Hall", Rows: rows, SeatsPerRow: seatsPerRow}
	return &entity.Screening{Base: entity.Base{ID: uuid.New()}, HallID: hall.ID, MovieID: uuid.New(), Hall: hall}
}

func (l *fakeLedger) InTx(ctx context.Context, fn func(tx repository.LedgerTx) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx := &fakeTx{
		ledger:  l,
		orders:  maps.Clone(l.orders),
		tickets: maps.Clone(l.tickets),
		seats:   maps.Clone(l.seats),
	}
	if err := fn(tx); err != nil {
		return err
	}

	l.orders, l.tickets, l.seats = tx.orders, tx.tickets, tx.seats
	return nil
}

func (l *fakeLedger) TakenPositions(ctx context.Context, screeningID uuid.UUID) ([]reservation.Position, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var taken []reservation.Position
	for k := range l.seats {
		if k.screening == screeningID {
			taken = append(taken, k.pos)
		}
	}
	return taken, nil
}

func (l *fakeLedger) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var all []*entity.Order
	for _, o := range l.orders {
		if o.UserID == userID {
			all = append(all, l.withTickets(o))
		}
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	return all[offset:min(offset+limit, len(all))], total, nil
}

func (l *fakeLedger) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	o, ok := l.orders[id]
	if !ok || o.UserID != userID {
		return nil, nil
	}
	return l.withTickets(o), nil
}

func (l *fakeLedger) withTickets(o *entity.Order) *entity.Order {
	out := *o
	out.Tickets = nil
	for _, t := range l.tickets {
		if t.OrderID == o.ID {
			out.Tickets = append(out.Tickets, *t)
		}
	}
	return &out
}

func (l *fakeLedger) ticketCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.tickets)
}

func (l *fakeLedger) orderCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.orders)
}

type fakeTx struct {
	ledger  *fakeLedger
	orders  map[uuid.UUID]*entity.Order
	tickets map[uuid.UUID]*entity.Ticket
	seats   map[seatKey]uuid.UUID
}

func (tx *fakeTx) LockScreenings(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Screening, error) {
	found := make(map[uuid.UUID]*entity.Screening, len(ids))
	for _, id := range ids {
		if s, ok := tx.ledger.screenings[id]; ok {
			found[id] = s
		}
	}
	return found, nil
}

func (tx *fakeTx) LockOrder(ctx context.Context, orderID, userID uuid.UUID) (*entity.Order, error) {
	o, ok := tx.orders[orderID]
	if !ok || o.UserID != userID {
		return nil, nil
	}
	return o, nil
}

func (tx *fakeTx) LockOrderOfTicket(ctx context.Context, ticketID, userID uuid.UUID) (*entity.Order, error) {
	t, ok := tx.tickets[ticketID]
	if !ok {
		return nil, nil
	}
	return tx.LockOrder(ctx, t.OrderID, userID)
}

func (tx *fakeTx) CreateOrder(ctx context.Context, order *entity.Order) error {
	tx.orders[order.ID] = order
	return nil
}

func (tx *fakeTx) AddTicket(ctx context.Context, ticket *entity.Ticket) error {
	if tx.ledger.beforeAdd != nil {
		tx.ledger.beforeAdd(ticket)
	}

	k := seatKey{screening: ticket.ScreeningID, pos: ticket.Position()}
	if _, taken := tx.seats[k]; taken {
		return &reservation.DuplicateSeatError{ScreeningID: ticket.ScreeningID, Position: ticket.Position()}
	}
	tx.seats[k] = ticket.ID
	tx.tickets[ticket.ID] = ticket
	return nil
}

func (tx *fakeTx) RemoveTicket(ctx context.Context, ticketID uuid.UUID) (*entity.Ticket, error) {
	t, ok := tx.tickets[ticketID]
	if !ok {
		return nil, nil
	}
	delete(tx.tickets, ticketID)
	delete(tx.seats, seatKey{screening: t.ScreeningID, pos: t.Position()})
	return t, nil
}

func (tx *fakeTx) CountTickets(ctx context.Context, orderID uuid.UUID) (int, error) {
	n := 0
	for _, t := range tx.tickets {
		if t.OrderID == orderID {
			n++
		}
	}
	return n, nil
}

func (tx *fakeTx) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	for id, t := range tx.tickets {
		if t.OrderID == orderID {
			delete(tx.tickets, id)
			delete(tx.seats, seatKey{screening: t.ScreeningID, pos: t.Position()})
		}
	}
	delete(tx.orders, orderID)
	return nil
}
