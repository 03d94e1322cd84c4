package request

import "time"

type GenreRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type ActorRequest struct {
	FirstName string `json:"first_name" validate:"required,max=255"`
	LastName  string `json:"last_name" validate:"required,max=255"`
}

type HallRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Rows        int    `json:"rows" validate:"gt=0"`
	SeatsPerRow int    `json:"seats_per_row" validate:"gt=0"`
}

type MovieRequest struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Description *string  `json:"description"`
	Duration    int      `json:"duration" validate:"gt=0"`
	Genres      []string `json:"genres" validate:"dive,uuid"`
	Actors      []string `json:"actors" validate:"dive,uuid"`
}

type ScreeningRequest struct {
	ShowTime time.Time `json:"show_time" validate:"required"`
	MovieID  string    `json:"movie_id" validate:"required,uuid"`
	HallID   string    `json:"hall_id" validate:"required,uuid"`
}
