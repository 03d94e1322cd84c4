package entity

import "github.com/google/uuid"

type Genre struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
}

type Actor struct {
	ID        uuid.UUID `db:"id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
}

func (a Actor) FullName() string {
	return a.FirstName + " " + a.LastName
}
