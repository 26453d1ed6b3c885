package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mshevelin/calendar-backend/internal/model"
	"github.com/mshevelin/calendar-backend/internal/recurrence"
)

func (a *Api) logError(_ *http.Request, err error) {
	a.logger.Errorw("server error", "error", err)
}

func (a *Api) errorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	data := map[string]interface{}{"error": message}

	if err := a.writeJSON(w, status, data, nil); err != nil {
		a.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (a *Api) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	a.logError(r, err)

	message := "the server encountered a problem and could not process your request"
	a.errorResponse(w, r, http.StatusInternalServerError, message)
}

func (a *Api) clientErrorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	a.logger.Debugw("client error", "err", message)
	a.errorResponse(w, r, status, message)
}

func (a *Api) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "the requested resource could not be found"
	a.clientErrorResponse(w, r, http.StatusNotFound, message)
}

func (a *Api) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf("the %s method is not supported for this resource", r.Method)
	a.clientErrorResponse(w, r, http.StatusMethodNotAllowed, message)
}

func (a *Api) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	a.clientErrorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (a *Api) failedValidationResponse(w http.ResponseWriter, r *http.Request, errors map[string]string) {
	a.clientErrorResponse(w, r, http.StatusUnprocessableEntity, errors)
}

// conflictResponse carries the full conflicting record so the caller can
// surface it and pick a different interval.
func (a *Api) conflictResponse(w http.ResponseWriter, r *http.Request, conflicting *model.Event) {
	data := map[string]interface{}{
		"error":             "the requested interval conflicts with an existing event",
		"conflicting_event": mapToEventResp(conflicting),
	}

	if err := a.writeJSON(w, http.StatusConflict, data, nil); err != nil {
		a.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (a *Api) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *model.ValidationError
	var conflictErr *model.ConflictError
	var parseErr *recurrence.ParseError

	switch {
	case errors.As(err, &validationErr):
		a.failedValidationResponse(w, r, map[string]string{validationErr.Field: validationErr.Reason})
	case errors.As(err, &parseErr):
		a.badRequestResponse(w, r, parseErr)
	case errors.As(err, &conflictErr):
		a.conflictResponse(w, r, conflictErr.Conflicting)
	case errors.Is(err, model.ErrAlreadyExists):
		a.clientErrorResponse(w, r, http.StatusConflict, "an exception for this occurrence already exists")
	case errors.Is(err, model.ErrNoRecord):
		a.notFoundResponse(w, r)
	default:
		a.serverErrorResponse(w, r, err)
	}
}
