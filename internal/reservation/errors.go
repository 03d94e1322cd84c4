package reservation

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrEmptySelection   = errors.New("at least one ticket is required")
	ErrGeometryConflict = errors.New("hall geometry would orphan sold seats")
	ErrOversold         = errors.New("sold tickets exceed hall capacity")
)

// OutOfRangeError is returned for a row or seat outside [1, Max].
type OutOfRangeError struct {
	Field Field
	Value int
	Max   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s must be in the range [1, %d]", e.Field, e.Max)
}

// DuplicateSeatError is returned when a position is already held for a screening.
type DuplicateSeatError struct {
	ScreeningID uuid.UUID
	Position    Position
}

func (e *DuplicateSeatError) Error() string {
	return fmt.Sprintf("%s is already taken for screening %s", e.Position, e.ScreeningID)
}

type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Entity + " not found"
	}
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// SelectionError attributes Err to the ticket at Index (0-based) of a request.
type SelectionError struct {
	Index int
	Err   error
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("ticket %d: %v", e.Index, e.Err)
}

func (e *SelectionError) Unwrap() error {
	return e.Err
}
