package dtos

// ItemFields are the base item attributes shared by every insert request.
type ItemFields struct {
	ItemName         string      `json:"itemName" binding:"required"`
	PrevCollectorID  OptionalInt `json:"prevCollectorID"`
	SeriesName       string      `json:"seriesName" binding:"required"`
	ReleaseDate      string      `json:"releaseDate" binding:"required"`
	ManufacturerName string      `json:"manufacturerName" binding:"required"`
	Country          string      `json:"country" binding:"required"`
}

type InsertTradingCardRequest struct {
	Athlete       string `json:"athlete" binding:"required"`
	CardVariation string `json:"cardVariation" binding:"required"`
	Sport         string `json:"sport" binding:"required"`
	ItemFields
}

type InsertCoinRequest struct {
	Currency     string `json:"currency" binding:"required"`
	Denomination string `json:"denomination" binding:"required"`
	ItemFields
}

// UpdateItemRequest leaves a field unchanged when it is absent or blank.
// NewPrevCollectorID set to JSON null clears the previous collector.
type UpdateItemRequest struct {
	ItemID             FlexInt     `json:"itemID" binding:"required,gt=0"`
	NewItemName        string      `json:"newItemName"`
	NewPrevCollectorID OptionalInt `json:"newPrevCollectorID"`
}

type ImportResultDTO struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
}
