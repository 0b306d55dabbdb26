package http

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"accesshub/internal/infrastructure/auth"
	"accesshub/internal/infrastructure/email"
	"accesshub/internal/infrastructure/permission"
	"accesshub/internal/infrastructure/ratelimit"
	"accesshub/internal/shared/db"
	"accesshub/internal/shared/services/markdown"
)

// initServices creates the infrastructure services shared by the use cases:
// token signing, password hashing, transactions, markdown rendering, the
// casbin enforcer and the redis-backed login rate limiter.
func (c *Container) initServices() error {
	c.jwtSvc = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes)
	c.hasher = auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)
	c.txManager = db.NewTransactionManager(c.db)
	c.markdownSvc = markdown.NewMarkdownService()

	c.redis = redis.NewClient(&redis.Options{
		Addr:     c.cfg.Redis.GetAddr(),
		Password: c.cfg.Redis.Password,
		DB:       c.cfg.Redis.DB,
	})
	c.rateLimiter = ratelimit.NewRedisRateLimiter(c.redis)

	enforcer, err := permission.NewEnforcer(c.db, c.cfg.RBAC.ModelPath, c.log)
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}
	c.enforcer = enforcer

	if err := permission.InitAllPermissions(enforcer.Raw(), c.log); err != nil {
		return fmt.Errorf("failed to seed permission policies: %w", err)
	}
	if err := permission.NewRoleSync(c.db, c.log).SyncToCasbin(); err != nil {
		return fmt.Errorf("failed to sync user roles: %w", err)
	}

	if c.cfg.Email.Enabled {
		c.notifier = email.NewSMTPReviewNotifier(&c.cfg.Email)
	}

	return nil
}
