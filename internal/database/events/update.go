package events

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/mshevelin/calendar-backend/internal/database"
	"github.com/mshevelin/calendar-backend/internal/model"
)

func (*Repository) UpdateEvent(ctx context.Context, q database.Queryable, event *model.Event) error {
	recurrenceID, originalStart := recurrenceColumns(event)

	qb := database.PSQL.
		Update(database.EventsTable).
		SetMap(map[string]interface{}{
			"title":           event.Title,
			"start_date":      event.StartTime.UTC(),
			"end_date":        event.EndTime.UTC(),
			"recurrence_rule": event.RepeatRule,
			"recurrence_id":   recurrenceID,
			"original_start":  originalStart,
			"is_cancelled":    event.Cancelled,
		}).
		Where(sq.Eq{"id": event.ID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
