package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mshevelin/calendar-backend/internal/model"
	"go.uber.org/zap"
)

type Api struct {
	handler http.Handler
	logger  *zap.SugaredLogger

	eventsService eventsService
}

type eventsService interface {
	GetEvents(ctx context.Context, filter model.EventsFilter) ([]*model.Instance, error)
	GetEventInstance(ctx context.Context, id string, ts time.Time) (*model.Instance, error)
	CreateEvent(ctx context.Context, info *model.EventCreate) (*model.Event, error)
	CreateException(ctx context.Context, info *model.ExceptionCreate) (*model.Event, error)
	UpdateEvent(ctx context.Context, id string, info *model.EventUpdate) (*model.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}

func NewApi(logger *zap.SugaredLogger, eventsService eventsService) *Api {
	a := &Api{
		logger:        logger,
		eventsService: eventsService,
	}
	a.setupHandler()

	return a
}

func (a *Api) setupHandler() {
	middleware.DefaultLogger = func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.logger.Debugw(r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"protocol", r.Proto,
				"method", r.Method,
			)
			next.ServeHTTP(w, r)
		})
	}

	r := chi.NewMux()

	r.Use(middleware.Logger, middleware.Recoverer, middleware.StripSlashes)
	r.NotFound(a.notFoundResponse)
	r.MethodNotAllowed(a.methodNotAllowedResponse)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/events", func(r chi.Router) {
		r.Get("/", a.getEventsHandler)
		r.Post("/", a.createEventHandler)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", a.getEventInstanceHandler)
			r.Put("/", a.updateEventHandler)
			r.Delete("/", a.deleteEventHandler)
			r.Post("/exceptions", a.createExceptionHandler)
		})
	})

	a.handler = r
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}
