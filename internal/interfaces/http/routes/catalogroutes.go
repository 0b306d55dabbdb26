package routes

import (
	"github.com/gin-gonic/gin"

	catalogHandlers "accesshub/internal/interfaces/http/handlers/catalog"
	"accesshub/internal/interfaces/http/middleware"
)

// CatalogRouteConfig holds dependencies for catalog browsing routes.
type CatalogRouteConfig struct {
	CatalogHandler *catalogHandlers.CatalogHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupCatalogRoutes configures catalog browsing routes.
func SetupCatalogRoutes(engine *gin.Engine, cfg *CatalogRouteConfig) {
	catalog := engine.Group("/catalog")
	catalog.Use(cfg.AuthMiddleware.RequireAuth())
	{
		catalog.GET("", cfg.CatalogHandler.ListCatalog)
	}
}
