package usecase

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidID is returned for identifiers that are not UUIDs.
var ErrInvalidID = errors.New("invalid id")

func parseID(entity, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s id %q", ErrInvalidID, entity, raw)
	}
	return id, nil
}

func parseIDs(entity string, raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := parseID(entity, r)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
