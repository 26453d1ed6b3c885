package recurrence

import "time"

// Occurrences expands the rule over the half-open window [windowStart,
// windowEnd) and returns the ordered, deduplicated occurrence start instants
// in UTC. An occurrence is included iff its start instant falls inside the
// window; an occurrence starting before windowStart is excluded even when its
// computed end would reach into the window. Plain events are windowed by
// full-interval overlap at the storage layer instead, so the two classes
// deliberately differ near the left window edge.
//
// The expansion is a pure function of the rule and the window and can be
// re-run with identical results.
func (r *Rule) Occurrences(windowStart, windowEnd time.Time) []time.Time {
	if !windowStart.Before(windowEnd) {
		return nil
	}

	// Between treats both bounds inclusively, so back the right bound off
	// to keep the window half-open.
	found := r.rr.Between(windowStart.UTC(), windowEnd.UTC().Add(-1), true)

	res := make([]time.Time, 0, len(found))
	for _, t := range found {
		t = t.UTC()
		if len(res) > 0 && !res[len(res)-1].Before(t) {
			continue
		}
		res = append(res, t)
	}

	return res
}
