package events

import (
	"time"

	"github.com/mshevelin/calendar-backend/internal/model"
)

// validateWrite enforces the write-path preconditions shared by every
// non-cancellation record: a non-empty title and a strictly positive
// interval. Cancellation exceptions skip both, their interval being a
// placeholder.
func validateWrite(title string, from, to time.Time) error {
	if title == "" {
		return &model.ValidationError{Field: "title", Reason: "must be provided"}
	}
	if from.IsZero() {
		return &model.ValidationError{Field: "start_time", Reason: "must be provided"}
	}
	if !from.Before(to) {
		return &model.ValidationError{Field: "end_time", Reason: "must be after start_time"}
	}

	return nil
}
