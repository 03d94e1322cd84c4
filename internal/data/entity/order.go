package entity

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	BaseSimple
	UserID  uuid.UUID `db:"user_id"`
	Tickets []Ticket
}

func NewOrder(userID uuid.UUID, now time.Time) *Order {
	return &Order{
		BaseSimple: BaseSimple{ID: uuid.New(), CreatedAt: now},
		UserID:     userID,
	}
}
