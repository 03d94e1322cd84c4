package response

import (
	"time"

	"cinema-reservation/internal/reservation"

	"github.com/google/uuid"
)

// ScreeningListResponse is one row of the screening list.
type ScreeningListResponse struct {
	ID               uuid.UUID `json:"id"`
	ShowTime         time.Time `json:"show_time"`
	MovieTitle       string    `json:"movie_title"`
	HallName         string    `json:"hall_name"`
	HallCapacity     int       `json:"hall_capacity"`
	TicketsAvailable int       `json:"tickets_available"`
}

type ScreeningDetailResponse struct {
	ID          uuid.UUID              `json:"id"`
	ShowTime    time.Time              `json:"show_time"`
	Movie       MovieResponse          `json:"movie"`
	Hall        HallResponse           `json:"hall"`
	TakenPlaces []reservation.Position `json:"taken_places"`
}

type SeatMapResponse struct {
	ScreeningID uuid.UUID              `json:"screening_id"`
	Rows        int                    `json:"rows"`
	SeatsPerRow int                    `json:"seats_per_row"`
	TakenPlaces []reservation.Position `json:"taken_places"`
}

type ScreeningResponse struct {
	ID       uuid.UUID `json:"id"`
	ShowTime time.Time `json:"show_time"`
	MovieID  uuid.UUID `json:"movie_id"`
	HallID   uuid.UUID `json:"hall_id"`
}
