package entity

import (
	"time"

	"cinema-reservation/internal/reservation"

	"github.com/google/uuid"
)

type Ticket struct {
	BaseSimple
	OrderID     uuid.UUID `db:"order_id"`
	ScreeningID uuid.UUID `db:"screening_id"`
	Row         int       `db:"row_num"`
	Seat        int       `db:"seat_num"`

	// Screening is populated when tickets are read back for an order.
	Screening *ScreeningSummary
}

func NewTicket(orderID uuid.UUID, sel reservation.Selection, now time.Time) *Ticket {
	return &Ticket{
		BaseSimple:  BaseSimple{ID: uuid.New(), CreatedAt: now},
		OrderID:     orderID,
		ScreeningID: sel.ScreeningID,
		Row:         sel.Position.Row,
		Seat:        sel.Position.Seat,
	}
}

func (t *Ticket) Position() reservation.Position {
	return reservation.Position{Row: t.Row, Seat: t.Seat}
}
