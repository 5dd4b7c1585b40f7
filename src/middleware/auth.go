package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	ContextCollectorID    = "collectorId"
	ContextCollectorEmail = "collectorEmail"
	ContextSessionClaims  = "sessionClaims"
)

// AuthMiddleware rejects requests without a valid session. failBody is the
// endpoint's own failure envelope, sent with 400 like the rest of the API.
func AuthMiddleware(sessions *SessionManager, failBody gin.H) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, err := sessions.FromRequest(ctx)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, failBody)
			return
		}

		// Sets the session claims in the context (collector ID and email)
		ctx.Set(ContextSessionClaims, claims)
		ctx.Set(ContextCollectorID, claims.CollectorID)
		ctx.Set(ContextCollectorEmail, claims.Email)
		ctx.Next()
	}
}

// CollectorEmail returns the authenticated collector's email, or "" outside AuthMiddleware.
func CollectorEmail(ctx *gin.Context) string {
	return ctx.GetString(ContextCollectorEmail)
}
