package request

type TicketRequest struct {
	ScreeningID string `json:"screening_id" validate:"required,uuid"`
	Row         int    `json:"row"`
	Seat        int    `json:"seat"`
}

// OrderRequest carries the seat selections of one order. Row and seat bounds
// depend on the hall and are checked by the order service, not by tags.
type OrderRequest struct {
	Tickets []TicketRequest `json:"tickets" validate:"dive"`
}
