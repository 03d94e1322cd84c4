package entity

import (
	"strings"

	"github.com/google/uuid"
)

type Movie struct {
	Base
	Title       string  `db:"title"`
	Description *string `db:"description"`
	Duration    int     `db:"duration"`
	Genres      []Genre
	Actors      []Actor
}

// MovieFilter narrows a movie listing. Genre and actor ids match any-of.
type MovieFilter struct {
	GenreIDs []uuid.UUID
	ActorIDs []uuid.UUID
	Title    string
}

func (m *Movie) GenreNames() []string {
	names := make([]string, len(m.Genres))
	for i, g := range m.Genres {
		names[i] = g.Name
	}
	return names
}

func (m *Movie) ActorNames() []string {
	names := make([]string, len(m.Actors))
	for i, a := range m.Actors {
		names[i] = a.FullName()
	}
	return names
}

func (f MovieFilter) TitleLike() string {
	if f.Title == "" {
		return ""
	}
	return "%" + strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(f.Title) + "%"
}
