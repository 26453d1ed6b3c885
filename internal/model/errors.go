package model

import (
	"errors"
	"fmt"
)

var ErrNoRecord = errors.New("no record")
var ErrAlreadyExists = errors.New("entity already exists")

// ValidationError reports a write rejected before any conflict evaluation:
// a blank title or a non-positive interval on a non-cancellation record.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ConflictError reports that a candidate interval overlaps an existing
// record. It carries the first conflicting record found so the caller can
// surface it.
type ConflictError struct {
	Conflicting *Event
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("interval conflicts with event %q", e.Conflicting.ID)
}
