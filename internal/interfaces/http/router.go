package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"accesshub/internal/infrastructure/config"
	"accesshub/internal/interfaces/http/middleware"
	"accesshub/internal/interfaces/http/routes"
	"accesshub/internal/shared/logger"

	_ "accesshub/docs"
)

// Router owns the gin engine and the wired container behind it.
type Router struct {
	engine    *gin.Engine
	container *Container
	log       logger.Interface
}

// NewRouter wires the container and returns a router ready for SetupRoutes.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	container, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}

	return &Router{
		engine:    container.Engine(),
		container: container,
		log:       log,
	}, nil
}

// SetupRoutes registers global middleware and every route group.
func (r *Router) SetupRoutes() {
	c := r.container

	r.engine.Use(middleware.RequestContext(r.log))
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(c.cfg.CORS.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    c.hdlrs.authHandler,
		AuthMiddleware: c.authMiddleware,
		LoginRateLimit: c.loginRateLimit,
	})

	routes.SetupCatalogRoutes(r.engine, &routes.CatalogRouteConfig{
		CatalogHandler: c.hdlrs.catalogHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupAccessRoutes(r.engine, &routes.AccessRouteConfig{
		AccessHandler:  c.hdlrs.accessHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		AccessHandler:        c.hdlrs.accessHandler,
		CatalogHandler:       c.hdlrs.catalogHandler,
		UserHandler:          c.hdlrs.userHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
}

// Engine returns the gin engine, mainly for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Shutdown releases container-owned resources.
func (r *Router) Shutdown(ctx context.Context) error {
	return r.container.Shutdown(ctx)
}

// Run starts the HTTP server on the given address.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
