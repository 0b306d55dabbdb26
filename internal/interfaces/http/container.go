package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"accesshub/internal/infrastructure/auth"
	"accesshub/internal/infrastructure/config"
	"accesshub/internal/infrastructure/email"
	"accesshub/internal/infrastructure/permission"
	"accesshub/internal/infrastructure/ratelimit"
	"accesshub/internal/interfaces/http/middleware"
	"accesshub/internal/shared/db"
	"accesshub/internal/shared/logger"
	"accesshub/internal/shared/services/markdown"
)

// Container wires repositories, use cases, handlers and middleware together
// and owns the shutdown of the shared clients.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	loginRateLimit       gin.HandlerFunc

	jwtSvc      *auth.JWTService
	hasher      *auth.BcryptPasswordHasher
	txManager   *db.TransactionManager
	markdownSvc markdown.MarkdownService
	enforcer    *permission.Enforcer
	rateLimiter ratelimit.RateLimiter
	notifier    *email.SMTPReviewNotifier
}

// NewContainer creates a Container with all dependencies wired together.
func NewContainer(gormDB *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     gormDB,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initServices(); err != nil {
		return nil, err
	}
	c.initRepositories()
	c.initUseCases()
	c.initHandlers()
	c.initMiddleware()

	return c, nil
}

// Engine returns the underlying gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown releases the clients the container owns. The gorm connection is
// closed by the caller that opened it.
func (c *Container) Shutdown(ctx context.Context) error {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
			return err
		}
	}
	return nil
}
