package events

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/mshevelin/calendar-backend/internal/database"
	"github.com/mshevelin/calendar-backend/internal/model"
)

func (*Repository) GetEventByID(ctx context.Context, q database.Queryable, id string) (*model.Event, error) {
	events, err := getEvents(ctx, q, sq.Eq{"id": id})
	if err != nil {
		return nil, err
	}

	if len(events) == 0 {
		return nil, model.ErrNoRecord
	}

	return events[0], nil
}

// GetEventsInWindow returns the union of the three candidate classes a window
// resolution needs: singles overlapping the window, masters starting before
// the window end, and exceptions whose original occurrence falls inside the
// window.
func (*Repository) GetEventsInWindow(ctx context.Context, q database.Queryable, filter model.EventsFilter) ([]*model.Event, error) {
	return getEvents(ctx, q, sq.Or{
		sq.And{
			sq.Eq{"recurrence_rule": ""},
			sq.Eq{"recurrence_id": nil},
			sq.Lt{"start_date": filter.To},
			sq.Gt{"end_date": filter.From},
		},
		sq.And{
			sq.NotEq{"recurrence_rule": ""},
			sq.Eq{"recurrence_id": nil},
			sq.Lt{"start_date": filter.To},
		},
		sq.And{
			sq.NotEq{"recurrence_id": nil},
			sq.GtOrEq{"original_start": filter.From},
			sq.Lt{"original_start": filter.To},
		},
	})
}

// GetOverlapping returns the records whose stored interval overlaps
// [from, to). Cancellation exceptions are skipped: their interval is a
// placeholder for a slot the cancellation has freed.
func (*Repository) GetOverlapping(ctx context.Context, q database.Queryable, from, to time.Time) ([]*model.Event, error) {
	return getEvents(ctx, q, sq.And{
		sq.Lt{"start_date": to},
		sq.Gt{"end_date": from},
		sq.Eq{"is_cancelled": false},
	})
}

func (*Repository) GetExceptionByKey(ctx context.Context, q database.Queryable, masterID string, originalStart time.Time) (*model.Event, error) {
	events, err := getEvents(ctx, q, sq.And{
		sq.Eq{"recurrence_id": masterID},
		sq.Eq{"original_start": originalStart.UTC()},
	})
	if err != nil {
		return nil, err
	}

	if len(events) == 0 {
		return nil, model.ErrNoRecord
	}

	return events[0], nil
}

func (*Repository) GetExceptions(ctx context.Context, q database.Queryable, masterID string) ([]*model.Event, error) {
	return getEvents(ctx, q, sq.Eq{"recurrence_id": masterID})
}

func getEvents(ctx context.Context, q database.Queryable, predicate interface{}) ([]*model.Event, error) {
	qb := baseQuery.
		Where(predicate).
		OrderBy("start_date")

	var dtos []*eventDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Event, len(dtos))
	for i, d := range dtos {
		res[i] = mapToEvent(d)
	}

	return res, nil
}
