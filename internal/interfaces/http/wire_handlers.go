package http

import (
	"accesshub/internal/infrastructure/ratelimit"
	accessHandlers "accesshub/internal/interfaces/http/handlers/access"
	authHandlers "accesshub/internal/interfaces/http/handlers/auth"
	catalogHandlers "accesshub/internal/interfaces/http/handlers/catalog"
	userHandlers "accesshub/internal/interfaces/http/handlers/user"
	"accesshub/internal/interfaces/http/middleware"
)

// allHandlers holds the HTTP handler instances registered on the router.
type allHandlers struct {
	authHandler    *authHandlers.AuthHandler
	catalogHandler *catalogHandlers.CatalogHandler
	accessHandler  *accessHandlers.AccessHandler
	userHandler    *userHandlers.UserHandler
}

func (c *Container) initHandlers() {
	c.hdlrs = &allHandlers{
		authHandler: authHandlers.NewAuthHandler(c.ucs.loginUC, c.ucs.getUserUC, c.log),
		catalogHandler: catalogHandlers.NewCatalogHandler(
			c.ucs.listRequestableUC, c.ucs.createItemUC, c.log),
		accessHandler: accessHandlers.NewAccessHandler(
			c.ucs.submitRequestUC,
			c.ucs.reviewRequestUC,
			c.ucs.getRequestUC,
			c.ucs.listRequestsUC,
			c.ucs.listEntitlementsUC,
			c.log),
		userHandler: userHandlers.NewUserHandler(c.ucs.createUserUC, c.ucs.listUsersUC, c.log),
	}
}

func (c *Container) initMiddleware() {
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, c.log)
	c.loginRateLimit = middleware.LoginRateLimit(c.rateLimiter, ratelimit.RateLimitConfig{
		RequestsPerMinute: c.cfg.RateLimit.LoginPerMinute,
		RequestsPerHour:   c.cfg.RateLimit.LoginPerHour,
	}, c.log)
}
