package repository

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrAlreadyExists is returned when a unique catalog value is taken.
var ErrAlreadyExists = errors.New("already exists")

const ticketSeatConstraint = "tickets_screening_row_seat_key"

// violation reports the constraint name when err is a Postgres error with code.
func violation(err error, code string) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == code {
		return pgErr.ConstraintName, true
	}
	return "", false
}

func uniqueViolation(err error) (string, bool) {
	return violation(err, pgerrcode.UniqueViolation)
}

func foreignKeyViolation(err error) (string, bool) {
	return violation(err, pgerrcode.ForeignKeyViolation)
}
