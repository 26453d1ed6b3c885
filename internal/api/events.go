package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mshevelin/calendar-backend/internal/model"
)

func (a *Api) getEventsHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := parseEventsQuery(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	instances, err := a.eventsService.GetEvents(r.Context(), *filter)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get events: %w", err))
		return
	}

	resp, _ := mapSlice(instances, mapToInstanceResp)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getEventInstanceHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	v := r.URL.Query().Get("at")
	if v == "" {
		a.badRequestResponse(w, r, fmt.Errorf("at must be provided"))
		return
	}
	ts, err := time.Parse(dateTimeFormat, v)
	if err != nil {
		a.badRequestResponse(w, r, fmt.Errorf("invalid time format: %w", err))
		return
	}

	instance, err := a.eventsService.GetEventInstance(r.Context(), id, ts)
	if err != nil {
		a.handleServiceError(w, r, err)
		return
	}

	resp, _ := mapToInstanceResp(instance)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) createEventHandler(w http.ResponseWriter, r *http.Request) {
	req := &struct {
		Title      string   `json:"title"`
		StartTime  dateTime `json:"start_time"`
		EndTime    dateTime `json:"end_time"`
		RepeatRule string   `json:"repeat_rule"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	event, err := a.eventsService.CreateEvent(r.Context(), &model.EventCreate{
		Title:      req.Title,
		StartTime:  time.Time(req.StartTime),
		EndTime:    time.Time(req.EndTime),
		RepeatRule: req.RepeatRule,
	})
	if err != nil {
		a.handleServiceError(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusCreated, mapToEventResp(event), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) createExceptionHandler(w http.ResponseWriter, r *http.Request) {
	req := &struct {
		OriginalStartTime dateTime `json:"original_start_time"`
		Title             string   `json:"title"`
		StartTime         dateTime `json:"start_time"`
		EndTime           dateTime `json:"end_time"`
		Cancelled         bool     `json:"cancelled"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	event, err := a.eventsService.CreateException(r.Context(), &model.ExceptionCreate{
		MasterID:          chi.URLParam(r, "id"),
		OriginalStartTime: time.Time(req.OriginalStartTime),
		Title:             req.Title,
		StartTime:         time.Time(req.StartTime),
		EndTime:           time.Time(req.EndTime),
		Cancelled:         req.Cancelled,
	})
	if err != nil {
		a.handleServiceError(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusCreated, mapToEventResp(event), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateEventHandler(w http.ResponseWriter, r *http.Request) {
	req := &struct {
		Title      string   `json:"title"`
		StartTime  dateTime `json:"start_time"`
		EndTime    dateTime `json:"end_time"`
		RepeatRule string   `json:"repeat_rule"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	event, err := a.eventsService.UpdateEvent(r.Context(), chi.URLParam(r, "id"), &model.EventUpdate{
		Title:      req.Title,
		StartTime:  time.Time(req.StartTime),
		EndTime:    time.Time(req.EndTime),
		RepeatRule: req.RepeatRule,
	})
	if err != nil {
		a.handleServiceError(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, mapToEventResp(event), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) deleteEventHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.eventsService.DeleteEvent(r.Context(), chi.URLParam(r, "id")); err != nil {
		// deleting an already-deleted record is a no-op
		if errors.Is(err, model.ErrNoRecord) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		a.handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseEventsQuery(r *http.Request) (*model.EventsFilter, error) {
	var err error

	res := &model.EventsFilter{}

	v := r.URL.Query().Get("from")
	if v == "" {
		return nil, fmt.Errorf("from must be provided")
	}
	res.From, err = time.Parse(dateTimeFormat, v)
	if err != nil {
		return nil, fmt.Errorf("invalid time format: %w", err)
	}

	v = r.URL.Query().Get("to")
	if v == "" {
		return nil, fmt.Errorf("to must be provided")
	}
	res.To, err = time.Parse(dateTimeFormat, v)
	if err != nil {
		return nil, fmt.Errorf("invalid time format: %w", err)
	}

	if !res.From.Before(res.To) {
		return nil, fmt.Errorf("from must be before to")
	}

	return res, nil
}
