// Package maintenance runs periodic consistency jobs against the event
// store. The only job today removes exceptions orphaned by out-of-band row
// mutations; the API's cascading master delete never leaves any behind.
package maintenance

import (
	"context"

	"github.com/mshevelin/calendar-backend/internal/config"
	"github.com/mshevelin/calendar-backend/internal/database"
	"github.com/robfig/cron/v3"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

type Sweeper struct {
	db     database.PGX
	logger *zap.SugaredLogger
	events eventsRepository
}

type eventsRepository interface {
	DeleteOrphanExceptions(ctx context.Context, q database.Queryable) (int64, error)
}

func NewSweeper(db database.PGX, logger *zap.SugaredLogger, events eventsRepository) *Sweeper {
	return &Sweeper{
		db:     db,
		logger: logger,
		events: events,
	}
}

func (s *Sweeper) Start(ctx context.Context) error {
	c := cron.New()

	if _, err := c.AddFunc(config.SweepSchedule(), func() {
		s.sweep(ctx)
	}); err != nil {
		return err
	}

	c.Start()
	closer.Bind(func() {
		<-c.Stop().Done()
	})

	return nil
}

func (s *Sweeper) sweep(ctx context.Context) {
	removed, err := s.events.DeleteOrphanExceptions(ctx, s.db)
	if err != nil {
		s.logger.Errorw("orphan exception sweep failed", "err", err)
		return
	}

	if removed > 0 {
		s.logger.Infow("removed orphaned exceptions", "count", removed)
	}
}
