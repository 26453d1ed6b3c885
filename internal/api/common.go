package api

import (
	"fmt"
	"time"

	"github.com/mshevelin/calendar-backend/internal/model"
)

const dateTimeFormat = time.RFC3339

type dateTime time.Time

func (d *dateTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid time value %s", s)
	}

	t, err := time.Parse(dateTimeFormat, s[1:len(s)-1])
	if err != nil {
		return fmt.Errorf("invalid time format: %w", err)
	}

	*d = dateTime(t)
	return nil
}

func (d dateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(d).Format(dateTimeFormat) + `"`), nil
}

type eventResp struct {
	ID                string    `json:"id"`
	Kind              string    `json:"kind"`
	Title             string    `json:"title"`
	StartTime         dateTime  `json:"start_time"`
	EndTime           dateTime  `json:"end_time"`
	RepeatRule        string    `json:"repeat_rule,omitempty"`
	RecurrenceID      string    `json:"recurrence_id,omitempty"`
	OriginalStartTime *dateTime `json:"original_start_time,omitempty"`
	Cancelled         bool      `json:"cancelled,omitempty"`
}

func mapToEventResp(e *model.Event) *eventResp {
	resp := &eventResp{
		ID:           e.ID,
		Kind:         e.Kind.String(),
		Title:        e.Title,
		StartTime:    dateTime(e.StartTime),
		EndTime:      dateTime(e.EndTime),
		RepeatRule:   e.RepeatRule,
		RecurrenceID: e.RecurrenceID,
		Cancelled:    e.Cancelled,
	}

	if e.Kind == model.KindException {
		original := dateTime(e.OriginalStartTime)
		resp.OriginalStartTime = &original
	}

	return resp
}

type instanceResp struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	StartTime dateTime `json:"start_time"`
	EndTime   dateTime `json:"end_time"`
	Generated bool     `json:"generated,omitempty"`
	MasterID  string   `json:"master_id,omitempty"`
}

func mapToInstanceResp(i *model.Instance) (*instanceResp, error) {
	return &instanceResp{
		ID:        i.ID,
		Title:     i.Title,
		StartTime: dateTime(i.StartTime),
		EndTime:   dateTime(i.EndTime),
		Generated: i.Generated,
		MasterID:  i.MasterID,
	}, nil
}
