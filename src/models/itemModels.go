package models

import "time"

// ItemModel is the base row shared by every collectible. Each item has exactly
// one specialization row, either a TradingCardModel or a CoinModel.
type ItemModel struct {
	ItemID           int          `json:"itemID" gorm:"column:item_id;primaryKey;autoIncrement:false"`
	ItemName         string       `json:"itemName" gorm:"column:item_name;type:varchar(255);not null"`
	PrevCollectorID  *int         `json:"prevCollectorID" gorm:"column:prev_collector_id"`
	SeriesName       string       `json:"seriesName" gorm:"column:series_name;type:varchar(255);not null;index"`
	Series           *SeriesModel `json:"-" gorm:"foreignKey:SeriesName;references:SeriesName;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	ReleaseDate      time.Time    `json:"releaseDate" gorm:"column:release_date;type:date;not null"`
	ManufacturerName string       `json:"manufacturerName" gorm:"column:manufacturer_name;type:varchar(255);not null"`
	Country          string       `json:"country" gorm:"column:country;type:varchar(100);not null"`
}

func (ItemModel) TableName() string { return "items" }

type TradingCardModel struct {
	ItemID        int        `json:"itemID" gorm:"column:item_id;primaryKey;autoIncrement:false"`
	Item          *ItemModel `json:"-" gorm:"foreignKey:ItemID;references:ItemID;constraint:OnDelete:CASCADE;"`
	Athlete       string     `json:"athlete" gorm:"column:athlete;type:varchar(255);not null"`
	CardVariation string     `json:"cardVariation" gorm:"column:card_variation;type:varchar(255);not null"`
	Sport         string     `json:"sport" gorm:"column:sport;type:varchar(100);not null"`
}

func (TradingCardModel) TableName() string { return "trading_cards" }

type CoinModel struct {
	ItemID       int        `json:"itemID" gorm:"column:item_id;primaryKey;autoIncrement:false"`
	Item         *ItemModel `json:"-" gorm:"foreignKey:ItemID;references:ItemID;constraint:OnDelete:CASCADE;"`
	Currency     string     `json:"currency" gorm:"column:currency;type:varchar(100);not null"`
	Denomination string     `json:"denomination" gorm:"column:denomination;type:varchar(100);not null"`
}

func (CoinModel) TableName() string { return "coins" }
