// Package reservation holds the seat rules shared by every booking path:
// hall geometry, seat bounds, availability and the error kinds surfaced to clients.
package reservation

import "fmt"

type Field string

const (
	FieldRow  Field = "row"
	FieldSeat Field = "seat"
)

// Geometry is the rectangular seat grid of a hall.
type Geometry struct {
	Rows        int
	SeatsPerRow int
}

func (g Geometry) Capacity() int {
	return g.Rows * g.SeatsPerRow
}

// Position is a 1-indexed seat position inside a hall.
type Position struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

func (p Position) String() string {
	return fmt.Sprintf("row %d, seat %d", p.Row, p.Seat)
}

// ValidatePosition checks p against g. The row is checked before the seat.
func ValidatePosition(p Position, g Geometry) error {
	if p.Row < 1 || p.Row > g.Rows {
		return &OutOfRangeError{Field: FieldRow, Value: p.Row, Max: g.Rows}
	}
	if p.Seat < 1 || p.Seat > g.SeatsPerRow {
		return &OutOfRangeError{Field: FieldSeat, Value: p.Seat, Max: g.SeatsPerRow}
	}
	return nil
}

// CheckResize reports whether a hall can take geometry g while seats up to
// maxRow and maxSeat are already sold in its screenings.
func CheckResize(g Geometry, maxRow, maxSeat int) error {
	if g.Rows < maxRow || g.SeatsPerRow < maxSeat {
		return fmt.Errorf("%w: sold seats reach row %d and seat %d, new grid is %dx%d",
			ErrGeometryConflict, maxRow, maxSeat, g.Rows, g.SeatsPerRow)
	}
	return nil
}
