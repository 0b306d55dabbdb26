package routes

import (
	"github.com/gin-gonic/gin"

	authHandlers "accesshub/internal/interfaces/http/handlers/auth"
	"accesshub/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *authHandlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	LoginRateLimit gin.HandlerFunc
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/login", cfg.LoginRateLimit, cfg.AuthHandler.Login)
		auth.GET("/login-hint", cfg.AuthHandler.LoginHint)
		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Me)
	}
}
