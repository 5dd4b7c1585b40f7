package services

import (
	"context"

	"gorm.io/gorm"
)

type HealthService struct {
	db *gorm.DB
}

// NewHealthService creates a new instance of HealthService
func NewHealthService(db *gorm.DB) *HealthService {
	return &HealthService{db: db}
}

// Ping reports whether a pooled connection can reach the database.
func (s *HealthService) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
