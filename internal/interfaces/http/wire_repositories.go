package http

import (
	"accesshub/internal/domain/accessrequest"
	"accesshub/internal/domain/catalog"
	"accesshub/internal/domain/entitlement"
	"accesshub/internal/domain/user"
	"accesshub/internal/infrastructure/repository"
)

// repositories holds the repository instances shared by the use cases.
type repositories struct {
	userRepo        user.Repository
	catalogRepo     catalog.Repository
	requestRepo     accessrequest.Repository
	entitlementRepo entitlement.Repository
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		userRepo:        repository.NewUserRepository(c.db),
		catalogRepo:     repository.NewCatalogItemRepository(c.db),
		requestRepo:     repository.NewAccessRequestRepository(c.db),
		entitlementRepo: repository.NewEntitlementRepository(c.db),
	}
}
