package response

import (
	"time"

	"github.com/google/uuid"
)

type TicketResponse struct {
	ID        uuid.UUID              `json:"id"`
	Row       int                    `json:"row"`
	Seat      int                    `json:"seat"`
	Screening *ScreeningListResponse `json:"screening,omitempty"`
}

type OrderResponse struct {
	ID        uuid.UUID        `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Tickets   []TicketResponse `json:"tickets"`
}
