package usecases

import (
	"context"
	"time"

	"accesshub/internal/application/access/dto"
	"accesshub/internal/domain/accessrequest"
	"accesshub/internal/domain/catalog"
	"accesshub/internal/domain/entitlement"
	"accesshub/internal/shared/errors"
	"accesshub/internal/shared/logger"
	"accesshub/internal/shared/services/markdown"
)

// Request states surfaced on catalog listings.
const (
	RequestStateAvailable = "available"
	RequestStatePending   = "pending"
)

// ListRequestableQuery is a user's view of the catalog. Search is an
// optional case-insensitive substring filter over name, description and
// category.
type ListRequestableQuery struct {
	UserID uint
	Search string
}

// ListRequestableUseCase returns the active catalog items the querying
// user does not already hold, each annotated with whether a request is
// pending. Items the user is entitled to are omitted; the entitlements
// listing carries those together with their open links.
type ListRequestableUseCase struct {
	catalogRepo     catalog.Repository
	entitlementRepo entitlement.Repository
	requestRepo     accessrequest.Repository
	markdownService markdown.MarkdownService
	logger          logger.Interface
}

func NewListRequestableUseCase(
	catalogRepo catalog.Repository,
	entitlementRepo entitlement.Repository,
	requestRepo accessrequest.Repository,
	markdownService markdown.MarkdownService,
	logger logger.Interface,
) *ListRequestableUseCase {
	return &ListRequestableUseCase{
		catalogRepo:     catalogRepo,
		entitlementRepo: entitlementRepo,
		requestRepo:     requestRepo,
		markdownService: markdownService,
		logger:          logger,
	}
}

func (uc *ListRequestableUseCase) Execute(ctx context.Context, query ListRequestableQuery) ([]dto.CatalogItemDTO, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	items, err := uc.catalogRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list catalog items", "error", err)
		return nil, errors.NewInternalError("failed to list catalog items")
	}

	grantedIDs, err := uc.entitlementRepo.ListItemIDsByUser(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list entitlements", "user_id", query.UserID, "error", err)
		return nil, errors.NewInternalError("failed to list catalog items")
	}
	granted := make(map[uint]bool, len(grantedIDs))
	for _, id := range grantedIDs {
		granted[id] = true
	}

	userRequests, err := uc.requestRepo.ListByUser(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list user requests", "user_id", query.UserID, "error", err)
		return nil, errors.NewInternalError("failed to list catalog items")
	}
	pending := make(map[uint]bool)
	for _, r := range userRequests {
		if r.Status().IsPending() {
			pending[r.CatalogItemID()] = true
		}
	}

	result := make([]dto.CatalogItemDTO, 0, len(items))
	for _, item := range items {
		if granted[item.ID()] {
			continue
		}
		if !item.MatchesSearch(query.Search) {
			continue
		}

		d := dto.CatalogItemDTO{
			ID:           item.ID(),
			Name:         item.Name(),
			Description:  item.Description(),
			Category:     item.Category(),
			IsActive:     item.IsActive(),
			RequestState: RequestStateAvailable,
			CreatedAt:    item.CreatedAt().Format(time.RFC3339),
		}

		if pending[item.ID()] {
			d.RequestState = RequestStatePending
		}

		if html, err := uc.markdownService.ToHTMLSanitized(item.Description()); err == nil {
			d.DescriptionHTML = html
		} else {
			uc.logger.Warnw("failed to render item description", "catalog_item_id", item.ID(), "error", err)
		}

		result = append(result, d)
	}

	return result, nil
}
