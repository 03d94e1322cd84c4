package entity

import "cinema-reservation/internal/reservation"

type Hall struct {
	Base
	Name        string `db:"name"`
	Rows        int    `db:"rows"`
	SeatsPerRow int    `db:"seats_per_row"`
}

func (h *Hall) Geometry() reservation.Geometry {
	return reservation.Geometry{Rows: h.Rows, SeatsPerRow: h.SeatsPerRow}
}
