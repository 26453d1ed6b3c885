package model

import (
	"fmt"
	"time"
)

// EventKind tags the variant of an event record. Exactly one kind holds for
// every persisted record; the kind is assigned at the storage boundary and
// all business code switches on it instead of probing optional fields.
type EventKind int

const (
	// KindSingle is an ordinary non-recurring event.
	KindSingle EventKind = iota
	// KindMaster defines a recurring series; StartTime is the series anchor
	// and EndTime-StartTime is the duration of every generated occurrence.
	KindMaster
	// KindException overrides or cancels one occurrence of a master.
	KindException
)

type EventCreate struct {
	Title      string
	StartTime  time.Time
	EndTime    time.Time
	RepeatRule string
}

type EventUpdate struct {
	Title      string
	StartTime  time.Time
	EndTime    time.Time
	RepeatRule string
}

type ExceptionCreate struct {
	MasterID          string
	OriginalStartTime time.Time
	Title             string
	StartTime         time.Time
	EndTime           time.Time
	Cancelled         bool
}

// Event is the single persisted entity. StartTime/EndTime bound the half-open
// interval [StartTime, EndTime) in UTC. For a cancellation exception the
// interval is a placeholder copied from the occurrence it cancels.
type Event struct {
	ID        string
	Kind      EventKind
	Title     string
	StartTime time.Time
	EndTime   time.Time

	// RepeatRule is the RRULE text, set only on masters.
	RepeatRule string

	// RecurrenceID and OriginalStartTime are set only on exceptions.
	// (RecurrenceID, OriginalStartTime) is the composite key locating the
	// overridden occurrence within the owning master's series.
	RecurrenceID      string
	OriginalStartTime time.Time

	Cancelled bool
}

// Instance is one entry of a resolved window: either a persisted record
// (single event or exception) or a virtual occurrence generated from a
// master's rule. Virtual instances are never persisted; Generated marks them
// and MasterID points back at the owning master so a caller can later submit
// the instance as a real exception.
type Instance struct {
	ID        string
	Title     string
	StartTime time.Time
	EndTime   time.Time
	Generated bool
	MasterID  string
}

type EventsFilter struct {
	From time.Time
	To   time.Time
}

func (k EventKind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindMaster:
		return "master"
	case KindException:
		return "exception"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}
