package controllers

import (
	"net/http"

	"github.com/CollectorsVault/CollectorsVault-Backend/src/dtos"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/middleware"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type CollectorController struct {
	service  *services.CollectorService
	sessions *middleware.SessionManager
}

func NewCollectorController(service *services.CollectorService, sessions *middleware.SessionManager) *CollectorController {
	return &CollectorController{service: service, sessions: sessions}
}

// Register handles POST requests to create a collector account
func (c *CollectorController) Register(ctx *gin.Context) {
	var req dtos.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.String(http.StatusBadRequest, "Name, email and password are required")
		return
	}
	if _, err := c.service.Register(ctx.Request.Context(), req); err != nil {
		ctx.JSON(statusFor(err), gin.H{"success": false})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// Login handles POST requests that open a session. The token is returned in
// the body and as an HttpOnly cookie.
func (c *CollectorController) Login(ctx *gin.Context) {
	var req dtos.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.String(http.StatusBadRequest, "Email and password are required")
		return
	}
	session, err := c.service.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(middleware.SessionCookieName, session.Token, int(c.sessions.TTL().Seconds()), "/", "", ctx.Request.TLS != nil, true)
	ctx.JSON(http.StatusOK, gin.H{"success": true, "token": session.Token})
}

// Logout handles PUT requests that end the caller's session, if any
func (c *CollectorController) Logout(ctx *gin.Context) {
	if claims, err := c.sessions.FromRequest(ctx); err == nil {
		c.service.Logout(claims)
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(middleware.SessionCookieName, "", -1, "/", "", ctx.Request.TLS != nil, true)
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
