package events

import (
	"context"
	"fmt"

	"github.com/mshevelin/calendar-backend/internal/model"
)

// DeleteEvent removes a record. Deleting a master also removes every
// exception referencing it, in one transaction; deleting anything else
// removes only that record.
func (s *Service) DeleteEvent(ctx context.Context, id string) error {
	event, err := s.eventsRepository.GetEventByID(ctx, s.db, id)
	if err != nil {
		return fmt.Errorf("eventsRepository.GetEventByID: %w", err)
	}

	if event.Kind != model.KindMaster {
		if err := s.eventsRepository.DeleteEvent(ctx, s.db, event.ID); err != nil {
			return fmt.Errorf("eventsRepository.DeleteEvent: %w", err)
		}
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.eventsRepository.DeleteExceptions(ctx, tx, event.ID); err != nil {
		return fmt.Errorf("eventsRepository.DeleteExceptions: %w", err)
	}

	if err := s.eventsRepository.DeleteEvent(ctx, tx, event.ID); err != nil {
		return fmt.Errorf("eventsRepository.DeleteEvent: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}
