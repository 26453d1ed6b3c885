package events

import (
	"context"
	"time"

	"github.com/mshevelin/calendar-backend/internal/database"
	"github.com/mshevelin/calendar-backend/internal/model"
	"go.uber.org/zap"
)

type Service struct {
	db               database.PGX
	logger           *zap.SugaredLogger
	eventsRepository eventsRepository
}

type eventsRepository interface {
	CreateEvent(ctx context.Context, q database.Queryable, event *model.Event) error
	GetEventByID(ctx context.Context, q database.Queryable, id string) (*model.Event, error)
	GetEventsInWindow(ctx context.Context, q database.Queryable, filter model.EventsFilter) ([]*model.Event, error)
	GetOverlapping(ctx context.Context, q database.Queryable, from, to time.Time) ([]*model.Event, error)
	GetExceptionByKey(ctx context.Context, q database.Queryable, masterID string, originalStart time.Time) (*model.Event, error)
	GetExceptions(ctx context.Context, q database.Queryable, masterID string) ([]*model.Event, error)
	UpdateEvent(ctx context.Context, q database.Queryable, event *model.Event) error
	DeleteEvent(ctx context.Context, q database.Queryable, id string) error
	DeleteExceptions(ctx context.Context, q database.Queryable, masterID string) error
}

func NewService(db database.PGX, logger *zap.SugaredLogger, repo eventsRepository) *Service {
	return &Service{
		db:               db,
		logger:           logger,
		eventsRepository: repo,
	}
}
