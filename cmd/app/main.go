package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"backoffice/cmd"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Invalid configuration")
	}
	logger := cmd.NewLogger(configs)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := cmd.OpenDatabase(configs, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to the database")
	}

	app, err := cmd.NewCompositionRoot(configs, db, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to build the application")
	}
	if err = app.Bootstrap(ctx); err != nil {
		logger.WithError(err).Fatal("Failed to bootstrap")
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		logger.WithError(err).Fatal("Failed to start jobs")
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs, logger)
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, configs cmd.Config, logger *logrus.Logger) {
	server, err := app.CreateServer()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load the API description")
	}

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(cmd.EchoLogLevel(logger.GetLevel()))
	server.Register(e)

	go func() {
		if startErr := e.Start(configs.HTTPAddress()); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			logger.WithError(startErr).Fatal("Web server stopped")
		}
	}()
	logger.WithField("address", configs.HTTPAddress()).Info("Web server started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Web server shutdown failed")
	}
	logger.Info("Web server stopped")
}
