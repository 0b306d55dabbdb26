package routes

import (
	"github.com/gin-gonic/gin"

	accessHandlers "accesshub/internal/interfaces/http/handlers/access"
	"accesshub/internal/interfaces/http/middleware"
)

// AccessRouteConfig holds dependencies for the requester-facing routes.
type AccessRouteConfig struct {
	AccessHandler  *accessHandlers.AccessHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAccessRoutes configures access request and entitlement routes.
func SetupAccessRoutes(engine *gin.Engine, cfg *AccessRouteConfig) {
	requests := engine.Group("/requests")
	requests.Use(cfg.AuthMiddleware.RequireAuth())
	{
		requests.POST("", cfg.AccessHandler.SubmitRequest)
		requests.GET("", cfg.AccessHandler.ListMyRequests)
		requests.GET("/:id", cfg.AccessHandler.GetRequest)
	}

	entitlements := engine.Group("/entitlements")
	entitlements.Use(cfg.AuthMiddleware.RequireAuth())
	{
		entitlements.GET("", cfg.AccessHandler.ListEntitlements)
	}
}
