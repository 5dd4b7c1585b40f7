package routes

import (
	"github.com/CollectorsVault/CollectorsVault-Backend/src/middleware"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Dependencies holds what the HTTP layer needs from the rest of the program.
type Dependencies struct {
	DB             *gorm.DB
	Sessions       *middleware.SessionManager
	AuthLimiter    *middleware.ClientRateLimiter
	AllowedOrigins []string
}

// NewRouter builds the engine with every service and route registered.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(), middleware.Metrics(), middleware.SetupCORS(deps.AllowedOrigins))

	// Services setup
	healthService := services.NewHealthService(deps.DB)
	collectorService := services.NewCollectorService(deps.DB, deps.Sessions)
	collectionService := services.NewCollectionService(deps.DB)
	itemService := services.NewItemService(deps.DB)
	importService := services.NewImportService(itemService)
	seriesService := services.NewSeriesService(deps.DB)
	auctionService := services.NewAuctionService(deps.DB)
	historyService := services.NewHistoryService(deps.DB)

	// Routes setup
	SetupHealthRoutes(router, healthService)
	SetupCollectorRoutes(router, collectorService, deps.Sessions, deps.AuthLimiter)
	SetupCollectionRoutes(router, collectionService, deps.Sessions)
	SetupItemRoutes(router, itemService, importService, deps.Sessions)
	SetupReportRoutes(router, seriesService, auctionService, historyService)

	return router
}
