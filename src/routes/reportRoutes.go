package routes

import (
	"github.com/CollectorsVault/CollectorsVault-Backend/src/controllers"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupReportRoutes(router *gin.Engine, series *services.SeriesService, auctions *services.AuctionService, history *services.HistoryService) {
	reportController := controllers.NewReportController(series, auctions, history)

	router.GET("/selectSeriesAfterDate", reportController.SelectSeriesAfterDate)
	router.GET("/selectAuctionHouses", reportController.SelectAuctionHouses)
	router.PUT("/project-on-history", reportController.ProjectOnHistory)
	router.PUT("/auctions-with-collection-items", reportController.AuctionsWithCollectionItems)
}
