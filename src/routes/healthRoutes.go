package routes

import (
	"github.com/CollectorsVault/CollectorsVault-Backend/src/controllers"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupHealthRoutes(router *gin.Engine, service *services.HealthService) {
	healthController := controllers.NewHealthController(service)

	router.GET("/check-db-connection", healthController.CheckDBConnection)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
