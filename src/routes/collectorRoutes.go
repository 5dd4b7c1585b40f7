package routes

import (
	"github.com/CollectorsVault/CollectorsVault-Backend/src/controllers"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/middleware"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupCollectorRoutes(router *gin.Engine, service *services.CollectorService, sessions *middleware.SessionManager, limiter *middleware.ClientRateLimiter) {
	collectorController := controllers.NewCollectorController(service, sessions)

	// Public routes
	router.POST("/register", middleware.RateLimit(limiter), collectorController.Register)
	router.POST("/login", middleware.RateLimit(limiter), collectorController.Login)
	router.PUT("/logout", collectorController.Logout)
}
