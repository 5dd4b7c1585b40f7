package services

import (
	"context"
	"time"

	"github.com/CollectorsVault/CollectorsVault-Backend/src/dtos"
	"gorm.io/gorm"
)

type SeriesService struct {
	db *gorm.DB
}

// NewSeriesService creates a new instance of SeriesService
func NewSeriesService(db *gorm.DB) *SeriesService {
	return &SeriesService{db: db}
}

// SelectSeriesAfterDate returns the series released strictly after date.
func (s *SeriesService) SelectSeriesAfterDate(ctx context.Context, date time.Time) ([]dtos.SeriesDTO, error) {
	series := []dtos.SeriesDTO{}
	err := s.db.WithContext(ctx).Raw(
		`SELECT series_name, release_date, manufacturer_name
		FROM series
		WHERE release_date > ?
		ORDER BY release_date, series_name`,
		date,
	).Scan(&series).Error
	if err != nil {
		return nil, storageError("select series after date", err)
	}
	return series, nil
}
