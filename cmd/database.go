package cmd

import (
	"time"

	"backoffice/internal/adapters/out/postgres"

	"github.com/sirupsen/logrus"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenDatabase connects to Postgres and migrates the schema. SQL is logged
// through logger: slow queries and errors always, every statement at debug
// level.
func OpenDatabase(cfg Config, logger *logrus.Logger) (*gorm.DB, error) {
	level := gormlogger.Warn
	if logger.IsLevelEnabled(logrus.DebugLevel) {
		level = gormlogger.Info
	}

	db, err := gorm.Open(pgdriver.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.New(logger, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err = postgres.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
