package routes

import (
	"job-tracker-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login, and profile routes.
// Register and login are the only endpoints outside the auth middleware.
func RegisterAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler, authMiddleware gin.HandlerFunc) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	me := rg.Group("/me")
	me.Use(authMiddleware)
	{
		me.GET("", authHandler.Me)
	}
}
