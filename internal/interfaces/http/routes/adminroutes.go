package routes

import (
	"github.com/gin-gonic/gin"

	accessHandlers "accesshub/internal/interfaces/http/handlers/access"
	catalogHandlers "accesshub/internal/interfaces/http/handlers/catalog"
	userHandlers "accesshub/internal/interfaces/http/handlers/user"
	"accesshub/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for admin-only routes.
type AdminRouteConfig struct {
	AccessHandler        *accessHandlers.AccessHandler
	CatalogHandler       *catalogHandlers.CatalogHandler
	UserHandler          *userHandlers.UserHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAdminRoutes configures admin-only routes. Every group requires an
// authenticated admin; the permission middleware additionally checks the
// casbin policy for the specific resource and action.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	adminRequests := engine.Group("/admin/requests")
	adminRequests.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireAdmin())
	{
		adminRequests.GET("",
			cfg.PermissionMiddleware.RequirePermission("access_request", "read"),
			cfg.AccessHandler.ListRequestsByStatus)
		adminRequests.POST("/:id/review",
			cfg.PermissionMiddleware.RequirePermission("access_request", "review"),
			cfg.AccessHandler.ReviewRequest)
	}

	adminCatalog := engine.Group("/admin/catalog")
	adminCatalog.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireAdmin())
	{
		adminCatalog.POST("",
			cfg.PermissionMiddleware.RequirePermission("catalog_item", "create"),
			cfg.CatalogHandler.CreateCatalogItem)
	}

	adminUsers := engine.Group("/admin/users")
	adminUsers.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireAdmin())
	{
		adminUsers.POST("",
			cfg.PermissionMiddleware.RequirePermission("user", "create"),
			cfg.UserHandler.CreateUser)
		adminUsers.GET("",
			cfg.PermissionMiddleware.RequirePermission("user", "read"),
			cfg.UserHandler.ListUsers)
	}
}
