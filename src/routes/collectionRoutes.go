package routes

import (
	"github.com/CollectorsVault/CollectorsVault-Backend/src/controllers"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/middleware"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupCollectionRoutes(router *gin.Engine, service *services.CollectionService, sessions *middleware.SessionManager) {
	collectionController := controllers.NewCollectionController(service)

	unauthorized := gin.H{"success": false, "message": "Collector not authenticated"}
	noData := gin.H{"data": nil}

	// Protected routes
	router.GET("/collection", middleware.AuthMiddleware(sessions, noData), collectionController.GetCollections)
	router.GET("/items-in-collection", middleware.AuthMiddleware(sessions, noData), collectionController.GetItemsInCollection)
	router.GET("/count-items-group-by-collection", middleware.AuthMiddleware(sessions, noData), collectionController.CountItemsGroupByCollection)
	router.GET("/collection-valuations", middleware.AuthMiddleware(sessions, gin.H{"success": false, "data": nil}), collectionController.GetCollectionValuations)

	router.POST("/create-collection", middleware.AuthMiddleware(sessions, unauthorized), collectionController.CreateCollection)
	router.POST("/add-item-to-collection", middleware.AuthMiddleware(sessions, unauthorized), collectionController.AddItemToCollection)
	router.DELETE("/delete-collection", middleware.AuthMiddleware(sessions, unauthorized), collectionController.DeleteCollection)
}
