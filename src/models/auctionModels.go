package models

import "time"

type AuctionModel struct {
	AuctionID    int        `json:"auctionID" gorm:"column:auction_id;primaryKey;autoIncrement"`
	AuctionHouse string     `json:"auctionHouse" gorm:"column:auction_house;type:varchar(255);not null;index"`
	AuctionDate  *time.Time `json:"auctionDate" gorm:"column:auction_date;type:date"`
}

func (AuctionModel) TableName() string { return "auctions" }

// IncludesModel records that an item is offered in an auction.
type IncludesModel struct {
	AuctionID int           `json:"auctionID" gorm:"column:auction_id;primaryKey;autoIncrement:false"`
	Auction   *AuctionModel `json:"-" gorm:"foreignKey:AuctionID;references:AuctionID;constraint:OnDelete:CASCADE;"`
	ItemID    int           `json:"itemID" gorm:"column:item_id;primaryKey;autoIncrement:false;index"`
	Item      *ItemModel    `json:"-" gorm:"foreignKey:ItemID;references:ItemID;constraint:OnDelete:CASCADE;"`
}

func (IncludesModel) TableName() string { return "includes" }
