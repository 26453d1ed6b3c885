package events

import (
	"time"

	"github.com/mshevelin/calendar-backend/internal/model"
)

type eventDTO struct {
	ID             string
	Title          string
	StartDate      time.Time
	EndDate        time.Time
	RecurrenceRule string
	RecurrenceID   *string
	OriginalStart  *time.Time
	IsCancelled    bool
}

func mapToEvent(dto *eventDTO) *model.Event {
	e := &model.Event{
		ID:         dto.ID,
		Kind:       model.KindSingle,
		Title:      dto.Title,
		StartTime:  dto.StartDate.UTC(),
		EndTime:    dto.EndDate.UTC(),
		RepeatRule: dto.RecurrenceRule,
		Cancelled:  dto.IsCancelled,
	}

	switch {
	case dto.RecurrenceID != nil:
		e.Kind = model.KindException
		e.RecurrenceID = *dto.RecurrenceID
		if dto.OriginalStart != nil {
			e.OriginalStartTime = dto.OriginalStart.UTC()
		}
	case dto.RecurrenceRule != "":
		e.Kind = model.KindMaster
	}

	return e
}

func recurrenceColumns(event *model.Event) (recurrenceID *string, originalStart *time.Time) {
	if event.Kind != model.KindException {
		return nil, nil
	}

	id := event.RecurrenceID
	original := event.OriginalStartTime.UTC()
	return &id, &original
}
