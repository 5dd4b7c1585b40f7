package dtos

import (
	"time"

	"github.com/CollectorsVault/CollectorsVault-Backend/src/utils"
)

type SeriesAfterDateQuery struct {
	ReleaseDate string `form:"releaseDate" binding:"required"`
}

type AuctionHousesQuery struct {
	MinItems string `form:"minItems" binding:"required"`
}

type AuctionsWithCollectionItemsRequest struct {
	CollectionID FlexInt `json:"collectionID" binding:"required,gt=0"`
}

type SeriesDTO struct {
	SeriesName       string
	ReleaseDate      time.Time
	ManufacturerName string
}

func (d SeriesDTO) Row() []any {
	return []any{d.SeriesName, utils.FormatDate(d.ReleaseDate), d.ManufacturerName}
}

type AuctionHouseCountDTO struct {
	AuctionHouse string
	TotalItems   int64
}

func (d AuctionHouseCountDTO) Row() []any {
	return []any{d.AuctionHouse, d.TotalItems}
}

type AuctionDTO struct {
	AuctionID    int
	AuctionHouse string
}

func (d AuctionDTO) Row() []any {
	return []any{d.AuctionID, d.AuctionHouse}
}

// Rower is implemented by every result that travels as a positional row.
type Rower interface {
	Row() []any
}

// Rows converts results to the positional [][]any wire format. It never returns nil.
func Rows[T Rower](items []T) [][]any {
	rows := make([][]any, 0, len(items))
	for _, item := range items {
		rows = append(rows, item.Row())
	}
	return rows
}
