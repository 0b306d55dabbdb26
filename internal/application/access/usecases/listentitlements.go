package usecases

import (
	"context"
	"time"

	"accesshub/internal/application/access/dto"
	"accesshub/internal/domain/catalog"
	"accesshub/internal/domain/entitlement"
	"accesshub/internal/shared/errors"
	"accesshub/internal/shared/logger"
)

type ListEntitlementsQuery struct {
	UserID uint
}

// ListEntitlementsUseCase returns the catalog items a user holds, with
// each grant enriched from the catalog so the portal can link straight
// to the item.
type ListEntitlementsUseCase struct {
	entitlementRepo entitlement.Repository
	catalogRepo     catalog.Repository
	logger          logger.Interface
}

func NewListEntitlementsUseCase(
	entitlementRepo entitlement.Repository,
	catalogRepo catalog.Repository,
	logger logger.Interface,
) *ListEntitlementsUseCase {
	return &ListEntitlementsUseCase{
		entitlementRepo: entitlementRepo,
		catalogRepo:     catalogRepo,
		logger:          logger,
	}
}

func (uc *ListEntitlementsUseCase) Execute(ctx context.Context, query ListEntitlementsQuery) ([]dto.EntitlementDTO, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	grants, err := uc.entitlementRepo.GetByUser(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list entitlements", "user_id", query.UserID, "error", err)
		return nil, errors.NewInternalError("failed to list entitlements")
	}

	result := make([]dto.EntitlementDTO, 0, len(grants))
	for _, g := range grants {
		d := dto.EntitlementDTO{
			ID:            g.ID(),
			CatalogItemID: g.CatalogItemID(),
			GrantedBy:     g.GrantedBy(),
			GrantedAt:     g.GrantedAt().Format(time.RFC3339),
		}

		if item, err := uc.catalogRepo.GetByID(ctx, g.CatalogItemID()); err == nil {
			d.CatalogItemName = item.Name()
			d.Category = item.Category()
			d.URLPath = item.URLPath()
		} else {
			uc.logger.Warnw("failed to resolve catalog item for entitlement", "catalog_item_id", g.CatalogItemID(), "error", err)
		}

		result = append(result, d)
	}

	return result, nil
}
