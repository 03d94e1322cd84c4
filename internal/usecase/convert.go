package usecase

import (
	"fmt"

	"cinema-reservation/internal/data/entity"
	"cinema-reservation/internal/dto/response"
	"cinema-reservation/internal/reservation"
)

func screeningSummaryToResponse(s *entity.ScreeningSummary) (response.ScreeningListResponse, error) {
	available, err := reservation.Available(s.Geometry, s.Sold)
	if err != nil {
		return response.ScreeningListResponse{}, fmt.Errorf("screening %s: %w", s.ID, err)
	}

	return response.ScreeningListResponse{
		ID:               s.ID,
		ShowTime:         s.ShowTime,
		MovieTitle:       s.MovieTitle,
		HallName:         s.HallName,
		HallCapacity:     s.Geometry.Capacity(),
		TicketsAvailable: available,
	}, nil
}

func orderToResponse(o *entity.Order) (response.OrderResponse, error) {
	tickets := make([]response.TicketResponse, len(o.Tickets))
	for i := range o.Tickets {
		t := &o.Tickets[i]
		tickets[i] = response.TicketResponse{ID: t.ID, Row: t.Row, Seat: t.Seat}

		if t.Screening != nil {
			s, err := screeningSummaryToResponse(t.Screening)
			if err != nil {
				return response.OrderResponse{}, err
			}
			tickets[i].Screening = &s
		}
	}

	return response.OrderResponse{
		ID:        o.ID,
		CreatedAt: o.CreatedAt,
		Tickets:   tickets,
	}, nil
}
