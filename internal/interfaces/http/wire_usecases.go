package http

import (
	accessUsecases "accesshub/internal/application/access/usecases"
	userUsecases "accesshub/internal/application/user/usecases"
	"accesshub/internal/domain/accessrequest"
)

// allUseCases holds every use case instance the handlers depend on.
type allUseCases struct {
	loginUC      *userUsecases.LoginUseCase
	createUserUC *userUsecases.CreateUserUseCase
	listUsersUC  *userUsecases.ListUsersUseCase
	getUserUC    *userUsecases.GetUserUseCase

	submitRequestUC    *accessUsecases.SubmitRequestUseCase
	reviewRequestUC    *accessUsecases.ReviewRequestUseCase
	getRequestUC       *accessUsecases.GetRequestUseCase
	listRequestsUC     *accessUsecases.ListRequestsUseCase
	listRequestableUC  *accessUsecases.ListRequestableUseCase
	listEntitlementsUC *accessUsecases.ListEntitlementsUseCase
	createItemUC       *accessUsecases.CreateCatalogItemUseCase
}

func (c *Container) initUseCases() {
	eligibility := accessrequest.NewEligibilityService(c.repos.entitlementRepo, c.repos.requestRepo)

	// The notifier is nil when email delivery is disabled; the review use
	// case skips notification in that case.
	var notifier accessUsecases.ReviewNotifier
	if c.notifier != nil {
		notifier = c.notifier
	}

	c.ucs = &allUseCases{
		loginUC:      userUsecases.NewLoginUseCase(c.repos.userRepo, c.hasher, c.jwtSvc, c.log),
		createUserUC: userUsecases.NewCreateUserUseCase(c.repos.userRepo, c.hasher, c.log),
		listUsersUC:  userUsecases.NewListUsersUseCase(c.repos.userRepo, c.log),
		getUserUC:    userUsecases.NewGetUserUseCase(c.repos.userRepo, c.log),

		submitRequestUC: accessUsecases.NewSubmitRequestUseCase(
			c.repos.requestRepo, c.repos.catalogRepo, eligibility, c.txManager, c.log),
		reviewRequestUC: accessUsecases.NewReviewRequestUseCase(
			c.repos.requestRepo, c.repos.entitlementRepo, c.repos.userRepo, c.repos.catalogRepo,
			c.txManager, notifier, c.log),
		getRequestUC: accessUsecases.NewGetRequestUseCase(
			c.repos.requestRepo, c.repos.userRepo, c.repos.catalogRepo, c.log),
		listRequestsUC: accessUsecases.NewListRequestsUseCase(
			c.repos.requestRepo, c.repos.userRepo, c.repos.catalogRepo, c.log),
		listRequestableUC: accessUsecases.NewListRequestableUseCase(
			c.repos.catalogRepo, c.repos.entitlementRepo, c.repos.requestRepo, c.markdownSvc, c.log),
		listEntitlementsUC: accessUsecases.NewListEntitlementsUseCase(
			c.repos.entitlementRepo, c.repos.catalogRepo, c.log),
		createItemUC: accessUsecases.NewCreateCatalogItemUseCase(c.repos.catalogRepo, c.log),
	}
}
