package entity

import (
	"time"

	"cinema-reservation/internal/reservation"

	"github.com/google/uuid"
)

type Screening struct {
	Base
	ShowTime time.Time `db:"show_time"`
	MovieID  uuid.UUID `db:"movie_id"`
	HallID   uuid.UUID `db:"hall_id"`

	// Hall is populated by lookups that join the hall geometry.
	Hall *Hall
}

// ScreeningSummary is the list projection of a screening. Sold is counted
// from the ticket table when the row is read.
type ScreeningSummary struct {
	ID         uuid.UUID
	ShowTime   time.Time
	MovieID    uuid.UUID
	MovieTitle string
	HallID     uuid.UUID
	HallName   string
	Geometry   reservation.Geometry
	Sold       int
}

type ScreeningFilter struct {
	// Date matches screenings whose show time falls on that calendar day (UTC).
	Date    *time.Time
	MovieID *uuid.UUID
}
