package usecases

import (
	"context"
	"fmt"
	"time"

	"accesshub/internal/application/access/dto"
	"accesshub/internal/domain/accessrequest"
	"accesshub/internal/domain/catalog"
	"accesshub/internal/domain/user"
	"accesshub/internal/shared/authorization"
	"accesshub/internal/shared/errors"
	"accesshub/internal/shared/logger"
)

// GetRequestQuery identifies a request and who is asking. Requesters may
// only read their own entries; admins may read any.
type GetRequestQuery struct {
	RequestID   uint
	RequesterID uint
	Role        authorization.UserRole
}

type GetRequestUseCase struct {
	requestRepo accessrequest.Repository
	userRepo    user.Repository
	catalogRepo catalog.Repository
	logger      logger.Interface
}

func NewGetRequestUseCase(
	requestRepo accessrequest.Repository,
	userRepo user.Repository,
	catalogRepo catalog.Repository,
	logger logger.Interface,
) *GetRequestUseCase {
	return &GetRequestUseCase{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

func (uc *GetRequestUseCase) Execute(ctx context.Context, query GetRequestQuery) (*dto.AccessRequestDTO, error) {
	if query.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}

	r, err := uc.requestRepo.GetByID(ctx, query.RequestID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("access request %d not found", query.RequestID))
	}

	if !authorization.CanAccessResourceByOwnerID(query.RequesterID, query.Role, r.UserID()) {
		return nil, errors.NewForbiddenError("access denied to this request")
	}

	d := dto.AccessRequestDTO{
		ID:               r.ID(),
		UserID:           r.UserID(),
		CatalogItemID:    r.CatalogItemID(),
		Justification:    r.Justification(),
		Status:           r.Status().String(),
		RequestedAt:      r.RequestedAt().Format(time.RFC3339),
		ReviewerID:       r.ReviewerID(),
		ReviewerComments: r.ReviewerComments(),
	}
	if r.ReviewedAt() != nil {
		reviewedAt := r.ReviewedAt().Format(time.RFC3339)
		d.ReviewedAt = &reviewedAt
	}

	if owner, err := uc.userRepo.GetByID(ctx, r.UserID()); err == nil {
		d.Username = owner.Username()
		d.UserFullName = owner.FullName()
	}
	if item, err := uc.catalogRepo.GetByID(ctx, r.CatalogItemID()); err == nil {
		d.CatalogItemName = item.Name()
	}
	if r.ReviewerID() != nil {
		if reviewer, err := uc.userRepo.GetByID(ctx, *r.ReviewerID()); err == nil {
			d.ReviewerName = reviewer.FullName()
		}
	}

	return &d, nil
}
