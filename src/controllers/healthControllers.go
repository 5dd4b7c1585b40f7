package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/CollectorsVault/CollectorsVault-Backend/src/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type HealthController struct {
	service *services.HealthService
}

func NewHealthController(service *services.HealthService) *HealthController {
	return &HealthController{service: service}
}

// CheckDBConnection handles GET requests probing the database
func (c *HealthController) CheckDBConnection(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 3*time.Second)
	defer cancel()

	if err := c.service.Ping(pingCtx); err != nil {
		logrus.WithError(err).Warn("database ping failed")
		ctx.String(http.StatusOK, "unable to connect")
		return
	}
	ctx.String(http.StatusOK, "connected")
}
