package response

import (
	"time"

	"cinema-reservation/internal/data/entity"

	"github.com/google/uuid"
)

type GenreResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ActorResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	FullName  string    `json:"full_name"`
}

type HallResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Rows        int       `json:"rows"`
	SeatsPerRow int       `json:"seats_per_row"`
	Capacity    int       `json:"capacity"`
}

// MovieResponse is the list projection: genre names and actor full names.
type MovieResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Duration    int       `json:"duration"`
	Genres      []string  `json:"genres"`
	Actors      []string  `json:"actors"`
}

type MovieDetailResponse struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description *string         `json:"description,omitempty"`
	Duration    int             `json:"duration"`
	Genres      []GenreResponse `json:"genres"`
	Actors      []ActorResponse `json:"actors"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func GenreToResponse(g *entity.Genre) GenreResponse {
	return GenreResponse{ID: g.ID, Name: g.Name}
}

func ActorToResponse(a *entity.Actor) ActorResponse {
	return ActorResponse{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		FullName:  a.FullName(),
	}
}

func HallToResponse(h *entity.Hall) HallResponse {
	return HallResponse{
		ID:          h.ID,
		Name:        h.Name,
		Rows:        h.Rows,
		SeatsPerRow: h.SeatsPerRow,
		Capacity:    h.Geometry().Capacity(),
	}
}

func MovieToResponse(m *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Duration:    m.Duration,
		Genres:      m.GenreNames(),
		Actors:      m.ActorNames(),
	}
}

func MovieToDetailResponse(m *entity.Movie) MovieDetailResponse {
	genres := make([]GenreResponse, len(m.Genres))
	for i := range m.Genres {
		genres[i] = GenreToResponse(&m.Genres[i])
	}
	actors := make([]ActorResponse, len(m.Actors))
	for i := range m.Actors {
		actors[i] = ActorToResponse(&m.Actors[i])
	}

	return MovieDetailResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Duration:    m.Duration,
		Genres:      genres,
		Actors:      actors,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
