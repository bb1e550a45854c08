// Package infra provides infrastructure adapters: the database connection and
// the gorm repositories underneath it.
package infra

import (
	"errors"
	"time"

	"github.com/amirasaad/cashcard/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens the gorm connection to the persistent store. An empty
// URL is a configuration error and fails startup; the service never accepts
// traffic without a reachable store.
func NewDBConnection(cfg *config.DB, appEnv string) (*gorm.DB, error) {
	if cfg == nil || cfg.Url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	logMode := logger.Silent
	if appEnv == "development" {
		logMode = logger.Info
	}

	connection, err := gorm.Open(postgres.Open(cfg.Url), &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	return connection, nil
}
