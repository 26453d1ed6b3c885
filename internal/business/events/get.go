package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mshevelin/calendar-backend/internal/model"
	"github.com/mshevelin/calendar-backend/internal/recurrence"
)

// GetEvents resolves the half-open window of the filter into the visible
// instance list.
func (s *Service) GetEvents(ctx context.Context, filter model.EventsFilter) ([]*model.Instance, error) {
	candidates, err := s.eventsRepository.GetEventsInWindow(ctx, s.db, filter)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEventsInWindow: %w", err)
	}

	return s.Resolve(filter.From, filter.To, candidates)
}

// GetEventInstance resolves the one instance of the record id at instant ts:
// for a single event or exception ts must equal its start, for a master ts
// must be an occurrence of its series, overridden or cancelled exceptions
// taken into account. A cancelled or nonexistent instance is ErrNoRecord.
func (s *Service) GetEventInstance(ctx context.Context, id string, ts time.Time) (*model.Instance, error) {
	event, err := s.eventsRepository.GetEventByID(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEventByID: %w", err)
	}

	ts = ts.UTC()

	if event.Kind != model.KindMaster {
		if event.Cancelled || !event.StartTime.Equal(ts) {
			return nil, model.ErrNoRecord
		}
		return &model.Instance{
			ID:        event.ID,
			Title:     event.Title,
			StartTime: event.StartTime,
			EndTime:   event.EndTime,
			MasterID:  event.RecurrenceID,
		}, nil
	}

	rule, err := recurrence.Parse(event.RepeatRule, event.StartTime)
	if err != nil {
		return nil, fmt.Errorf("parse repeat rule %q: %w", event.RepeatRule, err)
	}

	if !rule.Includes(ts) {
		return nil, model.ErrNoRecord
	}

	exc, err := s.eventsRepository.GetExceptionByKey(ctx, s.db, event.ID, ts)
	switch {
	case err == nil:
		if exc.Cancelled {
			return nil, model.ErrNoRecord
		}
		return &model.Instance{
			ID:        exc.ID,
			Title:     exc.Title,
			StartTime: exc.StartTime,
			EndTime:   exc.EndTime,
			MasterID:  event.ID,
		}, nil
	case errors.Is(err, model.ErrNoRecord):
		duration := event.EndTime.Sub(event.StartTime)
		return &model.Instance{
			ID:        instanceID(event.ID, ts),
			Title:     event.Title,
			StartTime: ts,
			EndTime:   ts.Add(duration),
			Generated: true,
			MasterID:  event.ID,
		}, nil
	default:
		return nil, fmt.Errorf("eventsRepository.GetExceptionByKey: %w", err)
	}
}
