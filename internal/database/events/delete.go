package events

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/mshevelin/calendar-backend/internal/database"
)

func (*Repository) DeleteEvent(ctx context.Context, q database.Queryable, id string) error {
	qb := database.PSQL.
		Delete(database.EventsTable).
		Where(sq.Eq{"id": id})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

func (*Repository) DeleteExceptions(ctx context.Context, q database.Queryable, masterID string) error {
	qb := database.PSQL.
		Delete(database.EventsTable).
		Where(sq.Eq{"recurrence_id": masterID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

// DeleteOrphanExceptions removes exceptions whose recurrence_id no longer
// points at a recurring master. The API never produces such rows itself;
// this backs the consistency sweep against out-of-band mutations.
func (*Repository) DeleteOrphanExceptions(ctx context.Context, q database.Queryable) (int64, error) {
	qb := database.PSQL.
		Delete(database.EventsTable + " e").
		Where("e.recurrence_id IS NOT NULL").
		Where("NOT EXISTS (SELECT 1 FROM " + database.EventsTable + " m WHERE m.id = e.recurrence_id AND m.recurrence_rule <> '')")

	tag, err := q.Exec(ctx, qb)
	if err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return tag.RowsAffected(), nil
}
