package routes

import (
	"github.com/CollectorsVault/CollectorsVault-Backend/src/controllers"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/middleware"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupItemRoutes(router *gin.Engine, service *services.ItemService, importService *services.ImportService, sessions *middleware.SessionManager) {
	itemController := controllers.NewItemController(service, importService)

	// Public routes
	router.POST("/insertTradingCard", itemController.InsertTradingCard)
	router.POST("/insertCoin", itemController.InsertCoin)
	router.GET("/import-items/template", itemController.ImportTemplate)

	// Protected routes
	router.PUT("/update-item", middleware.AuthMiddleware(sessions, gin.H{"success": false, "message": "Collector not authenticated"}), itemController.UpdateItem)
	router.POST("/import-items", middleware.AuthMiddleware(sessions, gin.H{"message": "Collector not authenticated"}), itemController.ImportItems)
}
