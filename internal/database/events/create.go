package events

import (
	"context"
	"fmt"

	"github.com/mshevelin/calendar-backend/internal/database"
	"github.com/mshevelin/calendar-backend/internal/model"
)

func (*Repository) CreateEvent(ctx context.Context, q database.Queryable, event *model.Event) error {
	recurrenceID, originalStart := recurrenceColumns(event)

	qb := database.PSQL.
		Insert(database.EventsTable).
		Columns(
			"id",
			"title",
			"start_date",
			"end_date",
			"recurrence_rule",
			"recurrence_id",
			"original_start",
			"is_cancelled",
		).
		Values(
			event.ID,
			event.Title,
			event.StartTime.UTC(),
			event.EndTime.UTC(),
			event.RepeatRule,
			recurrenceID,
			originalStart,
			event.Cancelled,
		)

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
