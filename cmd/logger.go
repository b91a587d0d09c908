package cmd

import (
	"os"

	"github.com/labstack/gommon/log"
	"github.com/sirupsen/logrus"
)

// NewLogger builds the process logger: coloured text in development, JSON
// in production.
func NewLogger(cfg Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if cfg.AppEnv == EnvProduction {
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
		logger.WithField("log_level", cfg.LogLevel).Warn("Unknown log level, using info")
	}
	logger.SetLevel(level)

	return logger
}

// EchoLogLevel maps the logrus level onto echo's own logger so framework
// messages follow the same threshold.
func EchoLogLevel(level logrus.Level) log.Lvl {
	switch {
	case level >= logrus.DebugLevel:
		return log.DEBUG
	case level == logrus.InfoLevel:
		return log.INFO
	case level == logrus.WarnLevel:
		return log.WARN
	default:
		return log.ERROR
	}
}
