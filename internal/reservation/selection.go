package reservation

import "github.com/google/uuid"

// Selection is one requested seat for one screening.
type Selection struct {
	ScreeningID uuid.UUID
	Position    Position
}

type seatKey struct {
	screening uuid.UUID
	pos       Position
}

// CheckSelections validates every selection against the geometry of its
// screening, then rejects selections that repeat a seat of an earlier one.
// Errors are wrapped in *SelectionError carrying the offending index.
func CheckSelections(selections []Selection, geometry func(uuid.UUID) (Geometry, bool)) error {
	if len(selections) == 0 {
		return ErrEmptySelection
	}

	for i, sel := range selections {
		g, ok := geometry(sel.ScreeningID)
		if !ok {
			return &SelectionError{Index: i, Err: &NotFoundError{Entity: "screening", ID: sel.ScreeningID.String()}}
		}
		if err := ValidatePosition(sel.Position, g); err != nil {
			return &SelectionError{Index: i, Err: err}
		}
	}

	seen := make(map[seatKey]struct{}, len(selections))
	for i, sel := range selections {
		k := seatKey{screening: sel.ScreeningID, pos: sel.Position}
		if _, dup := seen[k]; dup {
			return &SelectionError{Index: i, Err: &DuplicateSeatError{ScreeningID: sel.ScreeningID, Position: sel.Position}}
		}
		seen[k] = struct{}{}
	}

	return nil
}
