package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/CollectorsVault/CollectorsVault-Backend/src/dtos"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/services"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/utils"
	"github.com/gin-gonic/gin"
)

type ReportController struct {
	series   *services.SeriesService
	auctions *services.AuctionService
	history  *services.HistoryService
}

func NewReportController(series *services.SeriesService, auctions *services.AuctionService, history *services.HistoryService) *ReportController {
	return &ReportController{series: series, auctions: auctions, history: history}
}

// SelectSeriesAfterDate handles GET requests for series released after ?releaseDate
func (c *ReportController) SelectSeriesAfterDate(ctx *gin.Context) {
	var query dtos.SeriesAfterDateQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Missing release date"})
		return
	}
	releaseDate, err := utils.ParseDate(query.ReleaseDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Release date must be formatted as YYYY-MM-DD"})
		return
	}

	series, err := c.series.SelectSeriesAfterDate(ctx.Request.Context(), releaseDate)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	if len(series) == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "No series found after this date"})
		return
	}
	ctx.JSON(http.StatusOK, dtos.Rows(series))
}

// SelectAuctionHouses handles GET requests for houses offering at least ?minItems items
func (c *ReportController) SelectAuctionHouses(ctx *gin.Context) {
	var query dtos.AuctionHousesQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Missing minimum number of items"})
		return
	}
	minItems, err := strconv.Atoi(strings.TrimSpace(query.MinItems))
	if err != nil || minItems < 1 {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Minimum items must be a positive integer and greater than 0"})
		return
	}

	houses, err := c.auctions.SelectAuctionHousesWithAtLeastItems(ctx.Request.Context(), minItems)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"message": "Internal Server Error"})
		return
	}
	if len(houses) == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "No auction houses found"})
		return
	}
	ctx.JSON(http.StatusOK, dtos.Rows(houses))
}

// ProjectOnHistory handles PUT requests whose body is the list of history columns to show
func (c *ReportController) ProjectOnHistory(ctx *gin.Context) {
	var columns []string
	if err := ctx.ShouldBindJSON(&columns); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"data": [][]any{{}}, "message": "Body must be a JSON array of column names"})
		return
	}

	table, err := c.history.ProjectHistory(ctx.Request.Context(), columns)
	if err != nil {
		body := gin.H{"data": [][]any{{}}}
		if services.IsValidation(err) {
			body["message"] = err.Error()
			body["allowedColumns"] = services.HistoryColumnNames()
		}
		ctx.JSON(statusFor(err), body)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": table})
}

// AuctionsWithCollectionItems handles PUT requests for auctions offering every item of a collection
func (c *ReportController) AuctionsWithCollectionItems(ctx *gin.Context) {
	var req dtos.AuctionsWithCollectionItemsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "data": [][]any{{}}})
		return
	}
	auctions, err := c.auctions.FindAuctionsWithAllItemsFromCollection(ctx.Request.Context(), int(req.CollectionID))
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"success": false, "data": [][]any{{}}})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": dtos.Rows(auctions)})
}
