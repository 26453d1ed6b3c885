package main

import (
	"context"
	"log"
	"net/http"

	"github.com/mshevelin/calendar-backend/internal/api"
	events_service "github.com/mshevelin/calendar-backend/internal/business/events"
	"github.com/mshevelin/calendar-backend/internal/config"
	"github.com/mshevelin/calendar-backend/internal/database"
	"github.com/mshevelin/calendar-backend/internal/database/events"
	"github.com/mshevelin/calendar-backend/internal/maintenance"
	"github.com/xlab/closer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	ctx := context.Background()

	logger, err := initLogger()
	if err != nil {
		log.Fatalf("unable to initialize logger: %v", err)
	}

	db, err := database.NewPGX(ctx, config.PostgresURL())
	if err != nil {
		logger.Fatalw("unable to initialize db", "err", err)
	}

	eventsRepository := events.NewRepository()
	eventsService := events_service.NewService(db, logger, eventsRepository)

	sweeper := maintenance.NewSweeper(db, logger, eventsRepository)
	if err := sweeper.Start(ctx); err != nil {
		logger.Fatalw("unable to start maintenance sweeper", "err", err)
	}

	api := api.NewApi(logger, eventsService)

	errLogger, err := zap.NewStdLogAt(logger.Desugar(), zap.ErrorLevel)
	if err != nil {
		logger.Fatalw("error initiating server logger", "err", err)
	}

	server := &http.Server{
		Addr:     ":" + config.Port(),
		Handler:  api,
		ErrorLog: errLogger,
	}

	logger.Infow("Started server", "port", config.Port())
	logger.Fatalw("server error", "err", server.ListenAndServe())
}

func initLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if config.Production() {
		logger, err = zap.NewProduction()
	} else {
		conf := zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = conf.Build()
	}

	if err != nil {
		return nil, err
	}

	closer.Bind(func() {
		_ = logger.Sync()
	})

	return logger.Sugar(), nil
}
