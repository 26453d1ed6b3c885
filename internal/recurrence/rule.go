// Package recurrence parses recurrence descriptions and expands them into
// occurrence instants. It is pure: no storage, no clocks.
package recurrence

import (
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

type Frequency int

const (
	Daily Frequency = iota
	Weekly
	Monthly
	Yearly
)

// Rule is a validated, normalized recurrence description anchored at the
// owning event's start instant.
type Rule struct {
	Freq     Frequency
	Interval int
	Weekdays []rrule.Weekday
	Anchor   time.Time

	rr *rrule.RRule
}

// ParseError reports a malformed or semantically invalid recurrence
// description. It is fatal to the single write carrying the rule only.
type ParseError struct {
	Rule   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid recurrence rule %q: %s", e.Rule, e.Reason)
}

// Parse validates ruleText and anchors it at anchor. Recognized grammar:
// FREQ of DAILY, WEEKLY, MONTHLY or YEARLY; a positive INTERVAL (default 1);
// a BYDAY weekday set, honored for weekly rules only. A weekly rule without
// BYDAY defaults to the anchor's weekday; BYDAY on any other frequency is
// ignored for forward compatibility rather than rejected. Everything else in
// the text is ignored as well.
func Parse(ruleText string, anchor time.Time) (*Rule, error) {
	opt, err := rrule.StrToROption(ruleText)
	if err != nil {
		return nil, &ParseError{Rule: ruleText, Reason: err.Error()}
	}

	var freq Frequency
	switch opt.Freq {
	case rrule.DAILY:
		freq = Daily
	case rrule.WEEKLY:
		freq = Weekly
	case rrule.MONTHLY:
		freq = Monthly
	case rrule.YEARLY:
		freq = Yearly
	default:
		return nil, &ParseError{Rule: ruleText, Reason: "unsupported frequency"}
	}

	interval := opt.Interval
	if interval == 0 && !strings.Contains(strings.ToUpper(ruleText), "INTERVAL=") {
		interval = 1
	}
	if interval <= 0 {
		return nil, &ParseError{Rule: ruleText, Reason: "interval must be positive"}
	}

	var weekdays []rrule.Weekday
	if freq == Weekly {
		weekdays = opt.Byweekday
		if len(weekdays) == 0 {
			weekdays = []rrule.Weekday{weekdayOf(anchor.UTC())}
		}
	}

	rr, err := rrule.NewRRule(rrule.ROption{
		Freq:      opt.Freq,
		Interval:  interval,
		Byweekday: weekdays,
		Dtstart:   anchor.UTC(),
	})
	if err != nil {
		return nil, &ParseError{Rule: ruleText, Reason: err.Error()}
	}

	return &Rule{
		Freq:     freq,
		Interval: interval,
		Weekdays: weekdays,
		Anchor:   anchor.UTC(),
		rr:       rr,
	}, nil
}

// Includes reports whether the series places an occurrence exactly at t.
func (r *Rule) Includes(t time.Time) bool {
	t = t.UTC()
	return r.rr.After(t, true).Equal(t)
}

func (r *Rule) String() string {
	return r.rr.String()
}

func weekdayOf(t time.Time) rrule.Weekday {
	switch t.Weekday() {
	case time.Monday:
		return rrule.MO
	case time.Tuesday:
		return rrule.TU
	case time.Wednesday:
		return rrule.WE
	case time.Thursday:
		return rrule.TH
	case time.Friday:
		return rrule.FR
	case time.Saturday:
		return rrule.SA
	default:
		return rrule.SU
	}
}
