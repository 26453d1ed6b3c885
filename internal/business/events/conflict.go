package events

import (
	"context"
	"fmt"
	"time"

	"github.com/mshevelin/calendar-backend/internal/database"
	"github.com/mshevelin/calendar-backend/internal/model"
)

// FindConflict returns the first record in existing whose stored interval
// overlaps the half-open candidate interval [from, to), or nil. Two
// intervals [s1,e1) and [s2,e2) overlap iff s1 < e2 && s2 < e1, so touching
// endpoints never conflict. Records named in exclude are skipped by
// identity: an update must not conflict with itself, and an exception must
// not conflict with the master whose series it overrides.
func FindConflict(from, to time.Time, existing []*model.Event, exclude ...string) *model.Event {
	skip := make(map[string]struct{}, len(exclude))
	for _, id := range exclude {
		skip[id] = struct{}{}
	}

	for _, e := range existing {
		if _, ok := skip[e.ID]; ok {
			continue
		}
		if from.Before(e.EndTime) && e.StartTime.Before(to) {
			return e
		}
	}

	return nil
}

func (s *Service) checkConflict(ctx context.Context, q database.Queryable, from, to time.Time, exclude ...string) error {
	candidates, err := s.eventsRepository.GetOverlapping(ctx, q, from, to)
	if err != nil {
		return fmt.Errorf("eventsRepository.GetOverlapping: %w", err)
	}

	if c := FindConflict(from, to, candidates, exclude...); c != nil {
		return &model.ConflictError{Conflicting: c}
	}

	return nil
}
