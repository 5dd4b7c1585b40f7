package db

import (
	"context"
	"fmt"
	"time"

	"github.com/CollectorsVault/CollectorsVault-Backend/src/config"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/logger"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/models"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the shared connection pool described by cfg.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{
		Logger:                 logger.Gorm(),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		logrus.WithError(err).Error("failed to open database")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxIdleTime(cfg.DBConnMaxIdleTime)

	logrus.WithFields(logrus.Fields{
		"max_open": cfg.DBMaxOpenConns,
		"max_idle": cfg.DBMaxIdleConns,
	}).Info("collectors vault database connected")

	return db, nil
}

// Migrate creates or updates every table of the catalogue schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// Close releases the pool, waiting at most grace for it to drain.
func Close(db *gorm.DB, grace time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- sqlDB.Close() }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("closing database pool: %w", ctx.Err())
	}
}
