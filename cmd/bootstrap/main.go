// Command bootstrap migrates the schema and seeds the default order statuses
// and the configured administrator, then exits.
package main

import (
	"context"

	"backoffice/cmd"

	"github.com/sirupsen/logrus"
)

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Invalid configuration")
	}
	logger := cmd.NewLogger(configs)

	db, err := cmd.OpenDatabase(configs, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to the database")
	}

	app, err := cmd.NewCompositionRoot(configs, db, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to build the application")
	}
	if err = app.Bootstrap(context.Background()); err != nil {
		logger.WithError(err).Fatal("Bootstrap failed")
	}
	logger.Info("Bootstrap finished")
}
