package models

import "time"

type CollectionModel struct {
	CollectionID     int             `json:"collectionID" gorm:"column:collection_id;primaryKey;autoIncrement"`
	Name             string          `json:"collectionName" gorm:"column:collection_name;type:varchar(255);not null;uniqueIndex:idx_collection_owner_name,priority:2"`
	OwnerCollectorID int             `json:"ownerCollectorID" gorm:"column:owner_collector_id;not null;uniqueIndex:idx_collection_owner_name,priority:1"`
	Owner            *CollectorModel `json:"-" gorm:"foreignKey:OwnerCollectorID;references:CollectorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	DateCreated      time.Time       `json:"dateCreated" gorm:"column:date_created;type:date;not null"`
}

func (CollectionModel) TableName() string { return "collections" }

// PartOfModel links an item to a collection. Rows go away with either side.
type PartOfModel struct {
	CollectionID int              `json:"collectionID" gorm:"column:collection_id;primaryKey;autoIncrement:false"`
	Collection   *CollectionModel `json:"-" gorm:"foreignKey:CollectionID;references:CollectionID;constraint:OnDelete:CASCADE;"`
	ItemID       int              `json:"itemID" gorm:"column:item_id;primaryKey;autoIncrement:false;index"`
	Item         *ItemModel       `json:"-" gorm:"foreignKey:ItemID;references:ItemID;constraint:OnDelete:CASCADE;"`
}

func (PartOfModel) TableName() string { return "part_of" }
