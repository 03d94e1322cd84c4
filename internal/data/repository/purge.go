package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// purgeScreenings deletes the tickets of the given screenings, then every
// order left without tickets, then the screenings. It must run inside tx.
func purgeScreenings(ctx context.Context, tx pgx.Tx, screeningIDs []string) (int64, error) {
	if len(screeningIDs) == 0 {
		return 0, nil
	}

	rows, err := tx.Query(ctx,
		`DELETE FROM tickets WHERE screening_id = ANY($1::uuid[]) RETURNING order_id::text`,
		screeningIDs)
	if err != nil {
		return 0, fmt.Errorf("delete screening tickets: %w", err)
	}
	orderIDs, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return 0, fmt.Errorf("collect affected orders: %w", err)
	}

	if len(orderIDs) > 0 {
		// a separate statement so the ticket deletes above are visible
		_, err := tx.Exec(ctx, `
			DELETE FROM orders o
			WHERE o.id = ANY($1::uuid[])
			  AND NOT EXISTS (SELECT 1 FROM tickets t WHERE t.order_id = o.id)
		`, orderIDs)
		if err != nil {
			return 0, fmt.Errorf("delete emptied orders: %w", err)
		}
	}

	tag, err := tx.Exec(ctx, `DELETE FROM screenings WHERE id = ANY($1::uuid[])`, screeningIDs)
	if err != nil {
		return 0, fmt.Errorf("delete screenings: %w", err)
	}

	return tag.RowsAffected(), nil
}

func screeningIDsWhere(ctx context.Context, tx pgx.Tx, column string, id string) ([]string, error) {
	// column is one of a fixed set chosen by the callers in this package
	rows, err := tx.Query(ctx, `SELECT id::text FROM screenings WHERE `+column+` = $1::uuid FOR UPDATE`, id)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}
