package events

import (
	"context"
	"fmt"

	"github.com/mshevelin/calendar-backend/internal/model"
	"github.com/mshevelin/calendar-backend/internal/recurrence"
)

// UpdateEvent edits or moves a record, re-running the conflict check against
// everything but the record itself. Moving a master's anchor shifts the
// original instants of its exceptions by the same offset, atomically with the
// master, so the overrides keep pointing at the occurrences the rule now
// generates.
func (s *Service) UpdateEvent(ctx context.Context, id string, info *model.EventUpdate) (*model.Event, error) {
	event, err := s.eventsRepository.GetEventByID(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEventByID: %w", err)
	}

	if event.Cancelled {
		return nil, &model.ValidationError{Field: "id", Reason: "cancelled occurrences cannot be edited"}
	}
	if info.RepeatRule != "" && event.Kind != model.KindMaster {
		return nil, &model.ValidationError{Field: "repeat_rule", Reason: "only recurring events carry a rule"}
	}

	if err := validateWrite(info.Title, info.StartTime, info.EndTime); err != nil {
		return nil, err
	}

	repeatRule := event.RepeatRule
	if event.Kind == model.KindMaster {
		if info.RepeatRule != "" {
			repeatRule = info.RepeatRule
		}
		if _, err := recurrence.Parse(repeatRule, info.StartTime); err != nil {
			return nil, err
		}
	}

	exclude := []string{event.ID}

	var exceptions []*model.Event
	switch event.Kind {
	case model.KindMaster:
		exceptions, err = s.eventsRepository.GetExceptions(ctx, s.db, event.ID)
		if err != nil {
			return nil, fmt.Errorf("eventsRepository.GetExceptions: %w", err)
		}
		for _, e := range exceptions {
			exclude = append(exclude, e.ID)
		}
	case model.KindException:
		exclude = append(exclude, event.RecurrenceID)
	}

	if err := s.checkConflict(ctx, s.db, info.StartTime, info.EndTime, exclude...); err != nil {
		return nil, err
	}

	diff := info.StartTime.UTC().Sub(event.StartTime)

	event.Title = info.Title
	event.StartTime = info.StartTime.UTC()
	event.EndTime = info.EndTime.UTC()
	event.RepeatRule = repeatRule

	if event.Kind != model.KindMaster || diff == 0 || len(exceptions) == 0 {
		if err := s.eventsRepository.UpdateEvent(ctx, s.db, event); err != nil {
			return nil, fmt.Errorf("eventsRepository.UpdateEvent: %w", err)
		}
		return event, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.eventsRepository.UpdateEvent(ctx, tx, event); err != nil {
		return nil, fmt.Errorf("eventsRepository.UpdateEvent: %w", err)
	}

	for _, e := range exceptions {
		e.OriginalStartTime = e.OriginalStartTime.Add(diff)
		if e.Cancelled {
			// placeholders mirror the occurrence they suppress
			e.StartTime = e.StartTime.Add(diff)
			e.EndTime = e.EndTime.Add(diff)
		}
		if err := s.eventsRepository.UpdateEvent(ctx, tx, e); err != nil {
			return nil, fmt.Errorf("eventsRepository.UpdateEvent: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return event, nil
}
