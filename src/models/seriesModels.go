package models

import "time"

type SeriesModel struct {
	SeriesName       string    `json:"seriesName" gorm:"column:series_name;type:varchar(255);primaryKey"`
	ReleaseDate      time.Time `json:"releaseDate" gorm:"column:release_date;type:date;not null;index"`
	ManufacturerName string    `json:"manufacturerName" gorm:"column:manufacturer_name;type:varchar(255);not null"`
}

func (SeriesModel) TableName() string { return "series" }
