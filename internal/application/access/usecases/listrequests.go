package usecases

import (
	"context"
	"time"

	"accesshub/internal/application/access/dto"
	"accesshub/internal/domain/accessrequest"
	"accesshub/internal/domain/catalog"
	"accesshub/internal/domain/user"
	"accesshub/internal/shared/errors"
	"accesshub/internal/shared/logger"
)

// ListRequestsQuery selects one view of the ledger: a user's own history
// when UserID is set, otherwise all requests with the given status
// (pending when empty). Results keep ledger insertion order.
type ListRequestsQuery struct {
	UserID uint
	Status accessrequest.Status
}

type ListRequestsUseCase struct {
	requestRepo accessrequest.Repository
	userRepo    user.Repository
	catalogRepo catalog.Repository
	logger      logger.Interface
}

func NewListRequestsUseCase(
	requestRepo accessrequest.Repository,
	userRepo user.Repository,
	catalogRepo catalog.Repository,
	logger logger.Interface,
) *ListRequestsUseCase {
	return &ListRequestsUseCase{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

func (uc *ListRequestsUseCase) Execute(ctx context.Context, query ListRequestsQuery) ([]dto.AccessRequestDTO, error) {
	var (
		requests []*accessrequest.AccessRequest
		err      error
	)

	if query.UserID != 0 {
		requests, err = uc.requestRepo.ListByUser(ctx, query.UserID)
	} else {
		status := query.Status
		if status == "" {
			status = accessrequest.StatusPending
		}
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid status filter")
		}
		requests, err = uc.requestRepo.ListByStatus(ctx, status)
	}
	if err != nil {
		uc.logger.Errorw("failed to list access requests", "error", err)
		return nil, errors.NewInternalError("failed to list access requests")
	}

	result := make([]dto.AccessRequestDTO, 0, len(requests))
	userNames := map[uint]*user.User{}
	itemNames := map[uint]string{}

	for _, r := range requests {
		d := uc.toDTO(r)

		if u := uc.lookupUser(ctx, userNames, r.UserID()); u != nil {
			d.Username = u.Username()
			d.UserFullName = u.FullName()
		}
		if name, ok := uc.lookupItemName(ctx, itemNames, r.CatalogItemID()); ok {
			d.CatalogItemName = name
		}
		if r.ReviewerID() != nil {
			if u := uc.lookupUser(ctx, userNames, *r.ReviewerID()); u != nil {
				d.ReviewerName = u.FullName()
			}
		}

		result = append(result, d)
	}

	return result, nil
}

func (uc *ListRequestsUseCase) toDTO(r *accessrequest.AccessRequest) dto.AccessRequestDTO {
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
	return d
}

// lookupUser caches user lookups for the duration of one listing. Missing
// users leave the name fields empty instead of failing the listing.
func (uc *ListRequestsUseCase) lookupUser(ctx context.Context, cache map[uint]*user.User, id uint) *user.User {
	if u, ok := cache[id]; ok {
		return u
	}
	u, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Warnw("failed to resolve user for request listing", "user_id", id, "error", err)
		cache[id] = nil
		return nil
	}
	cache[id] = u
	return u
}

func (uc *ListRequestsUseCase) lookupItemName(ctx context.Context, cache map[uint]string, id uint) (string, bool) {
	if name, ok := cache[id]; ok {
		return name, name != ""
	}
	item, err := uc.catalogRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Warnw("failed to resolve catalog item for request listing", "catalog_item_id", id, "error", err)
		cache[id] = ""
		return "", false
	}
	cache[id] = item.Name()
	return item.Name(), true
}
