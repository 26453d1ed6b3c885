package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mshevelin/calendar-backend/internal/model"
	"github.com/mshevelin/calendar-backend/internal/recurrence"
)

// CreateEvent persists a single event, or a master when info carries a
// repeat rule. The write path is validate, detect conflict, persist;
// terminal on the first failure.
func (s *Service) CreateEvent(ctx context.Context, info *model.EventCreate) (*model.Event, error) {
	if err := validateWrite(info.Title, info.StartTime, info.EndTime); err != nil {
		return nil, err
	}

	kind := model.KindSingle
	if info.RepeatRule != "" {
		if _, err := recurrence.Parse(info.RepeatRule, info.StartTime); err != nil {
			return nil, err
		}
		kind = model.KindMaster
	}

	if err := s.checkConflict(ctx, s.db, info.StartTime, info.EndTime); err != nil {
		return nil, err
	}

	event := &model.Event{
		ID:         uuid.NewString(),
		Kind:       kind,
		Title:      info.Title,
		StartTime:  info.StartTime.UTC(),
		EndTime:    info.EndTime.UTC(),
		RepeatRule: info.RepeatRule,
	}

	if err := s.eventsRepository.CreateEvent(ctx, s.db, event); err != nil {
		return nil, fmt.Errorf("eventsRepository.CreateEvent: %w", err)
	}

	return event, nil
}

// CreateException persists an override or cancellation of one occurrence of
// a master. The original instant must be one the master's rule actually
// generates, and at most one exception may exist per (master, original)
// key; a duplicate submission fails with ErrAlreadyExists.
func (s *Service) CreateException(ctx context.Context, info *model.ExceptionCreate) (*model.Event, error) {
	master, err := s.eventsRepository.GetEventByID(ctx, s.db, info.MasterID)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEventByID: %w", err)
	}

	if master.Kind != model.KindMaster {
		return nil, &model.ValidationError{Field: "recurrence_id", Reason: "referenced event is not recurring"}
	}

	rule, err := recurrence.Parse(master.RepeatRule, master.StartTime)
	if err != nil {
		return nil, fmt.Errorf("parse repeat rule %q: %w", master.RepeatRule, err)
	}

	original := info.OriginalStartTime.UTC()
	if !rule.Includes(original) {
		return nil, &model.ValidationError{Field: "original_start_time", Reason: "not an occurrence of the series"}
	}

	if _, err := s.eventsRepository.GetExceptionByKey(ctx, s.db, master.ID, original); err == nil {
		return nil, model.ErrAlreadyExists
	} else if !errors.Is(err, model.ErrNoRecord) {
		return nil, fmt.Errorf("eventsRepository.GetExceptionByKey: %w", err)
	}

	event := &model.Event{
		ID:                uuid.NewString(),
		Kind:              model.KindException,
		RecurrenceID:      master.ID,
		OriginalStartTime: original,
		Cancelled:         info.Cancelled,
	}

	if info.Cancelled {
		// placeholder interval copied from the occurrence being cancelled
		event.Title = master.Title
		event.StartTime = original
		event.EndTime = original.Add(master.EndTime.Sub(master.StartTime))
	} else {
		if err := validateWrite(info.Title, info.StartTime, info.EndTime); err != nil {
			return nil, err
		}
		if err := s.checkConflict(ctx, s.db, info.StartTime, info.EndTime, master.ID); err != nil {
			return nil, err
		}

		event.Title = info.Title
		event.StartTime = info.StartTime.UTC()
		event.EndTime = info.EndTime.UTC()
	}

	if err := s.eventsRepository.CreateEvent(ctx, s.db, event); err != nil {
		return nil, fmt.Errorf("eventsRepository.CreateEvent: %w", err)
	}

	return event, nil
}
