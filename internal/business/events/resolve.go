package events

import (
	"fmt"
	"sort"
	"time"

	"github.com/mshevelin/calendar-backend/internal/model"
	"github.com/mshevelin/calendar-backend/internal/recurrence"
)

// exceptionKey locates the one occurrence an exception overrides. Keying on
// the unix second instead of time.Time keeps lookups independent of wall
// clock representation and monotonic readings.
type exceptionKey struct {
	masterID string
	unix     int64
}

// Resolve turns the candidate set for the half-open window [from, to) into
// the final visible instance list. Singles pass through; every master is
// expanded over the window and each generated instant is checked against the
// exception index: unmatched instants become virtual instances, modifications
// replace them with the exception's own fields, cancellations drop them. The
// result is ordered by ascending start time, stable for ties, and the whole
// resolution is a side-effect-free function of its inputs.
func (s *Service) Resolve(from, to time.Time, candidates []*model.Event) ([]*model.Instance, error) {
	var singles, masters, exceptions []*model.Event
	for _, e := range candidates {
		switch e.Kind {
		case model.KindMaster:
			masters = append(masters, e)
		case model.KindException:
			exceptions = append(exceptions, e)
		default:
			singles = append(singles, e)
		}
	}

	index := s.buildExceptionIndex(exceptions)

	var res []*model.Instance

	for _, e := range singles {
		res = append(res, &model.Instance{
			ID:        e.ID,
			Title:     e.Title,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
		})
	}

	for _, m := range masters {
		rule, err := recurrence.Parse(m.RepeatRule, m.StartTime)
		if err != nil {
			return nil, fmt.Errorf("parse repeat rule %q: %w", m.RepeatRule, err)
		}

		duration := m.EndTime.Sub(m.StartTime)

		for _, occ := range rule.Occurrences(from, to) {
			exc, ok := index[exceptionKey{masterID: m.ID, unix: occ.Unix()}]
			switch {
			case !ok:
				res = append(res, &model.Instance{
					ID:        instanceID(m.ID, occ),
					Title:     m.Title,
					StartTime: occ,
					EndTime:   occ.Add(duration),
					Generated: true,
					MasterID:  m.ID,
				})
			case exc.Cancelled:
				// occurrence suppressed
			default:
				res = append(res, &model.Instance{
					ID:        exc.ID,
					Title:     exc.Title,
					StartTime: exc.StartTime,
					EndTime:   exc.EndTime,
					MasterID:  m.ID,
				})
			}
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].StartTime.Before(res[j].StartTime)
	})

	return res, nil
}

// buildExceptionIndex maps composite keys to exception records. Two records
// sharing a key is a data inconsistency the write path rejects; when found in
// already-persisted data the last record seen wins and a divergent loser is
// logged rather than silently merged.
func (s *Service) buildExceptionIndex(exceptions []*model.Event) map[exceptionKey]*model.Event {
	index := make(map[exceptionKey]*model.Event, len(exceptions))
	for _, e := range exceptions {
		key := exceptionKey{masterID: e.RecurrenceID, unix: e.OriginalStartTime.Unix()}
		if prev, ok := index[key]; ok && !sameOverride(prev, e) {
			s.logger.Errorw("conflicting exceptions for one occurrence",
				"master_id", key.masterID,
				"original_start", e.OriginalStartTime,
				"kept", e.ID,
				"dropped", prev.ID,
			)
		}
		index[key] = e
	}

	return index
}

func sameOverride(a, b *model.Event) bool {
	return a.Title == b.Title &&
		a.StartTime.Equal(b.StartTime) &&
		a.EndTime.Equal(b.EndTime) &&
		a.Cancelled == b.Cancelled
}

func instanceID(masterID string, ts time.Time) string {
	return fmt.Sprintf("%v_%v", masterID, ts.Unix())
}
