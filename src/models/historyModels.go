package models

import "time"

// HistoryModel is an append-only ownership transfer record.
type HistoryModel struct {
	HistoryID         int        `json:"historyID" gorm:"column:history_id;primaryKey;autoIncrement"`
	ItemID            int        `json:"itemID" gorm:"column:item_id;not null;index"`
	Item              *ItemModel `json:"-" gorm:"foreignKey:ItemID;references:ItemID;constraint:OnDelete:CASCADE;"`
	PrevCollectorID   *int       `json:"prevCollectorID" gorm:"column:prev_collector_id"`
	PrevCollectorName string     `json:"prevCollectorName" gorm:"column:prev_collector_name;type:varchar(255);not null"`
	AcquireDate       time.Time  `json:"acquireDate" gorm:"column:acquire_date;type:date;not null"`
	SellDate          *time.Time `json:"sellDate" gorm:"column:sell_date;type:date"`
	PriceSold         *float64   `json:"priceSold" gorm:"column:price_sold;type:numeric(14,2)"`
}

func (HistoryModel) TableName() string { return "history" }
