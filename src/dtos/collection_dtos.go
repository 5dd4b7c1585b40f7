package dtos

import (
	"time"

	"github.com/CollectorsVault/CollectorsVault-Backend/src/utils"
)

type CollectionNameRequest struct {
	CollectionName string `json:"collectionName" binding:"required"`
}

type ItemsInCollectionQuery struct {
	CollectionName string `form:"collectionName" binding:"required"`
}

type AddItemToCollectionRequest struct {
	CollectionName string  `json:"collectionName" binding:"required"`
	ItemID         FlexInt `json:"itemID" binding:"required,gt=0"`
}

type CollectionSummaryDTO struct {
	CollectionID   int
	CollectionName string
	DateCreated    time.Time
}

func (d CollectionSummaryDTO) Row() []any {
	return []any{d.CollectionID, d.CollectionName, utils.FormatDate(d.DateCreated)}
}

type CollectionItemDTO struct {
	ItemID           int
	ItemName         string
	SeriesName       string
	ReleaseDate      time.Time
	ManufacturerName string
	Country          string
}

func (d CollectionItemDTO) Row() []any {
	return []any{d.ItemID, d.ItemName, d.SeriesName, utils.FormatDate(d.ReleaseDate), d.ManufacturerName, d.Country}
}

type CollectionItemCountDTO struct {
	CollectionName string
	ItemCount      int64
}

func (d CollectionItemCountDTO) Row() []any {
	return []any{d.CollectionName, d.ItemCount}
}

type CollectionValuationDTO struct {
	CollectionID   int
	CollectionName string
	TotalValue     float64
}

func (d CollectionValuationDTO) Row() []any {
	return []any{d.CollectionID, d.CollectionName, d.TotalValue}
}
