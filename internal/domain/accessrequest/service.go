package accessrequest

import (
	"context"
	"fmt"

	"accesshub/internal/domain/entitlement"
	"accesshub/internal/shared/errors"
)

// EligibilityService is the single enforcement point for the pair checks
// shared by the submit and review paths: a user may not request an item
// they already hold, and may not hold two pending requests for the same
// item. Both use cases consult this service instead of duplicating the
// checks against their own repositories.
type EligibilityService struct {
	entitlementRepo entitlement.Repository
	requestRepo     Repository
}

func NewEligibilityService(entitlementRepo entitlement.Repository, requestRepo Repository) *EligibilityService {
	return &EligibilityService{
		entitlementRepo: entitlementRepo,
		requestRepo:     requestRepo,
	}
}

// CheckSubmittable verifies a (user, catalog item) pair may receive a new
// request. Returns a conflict error naming the violated rule, or nil.
func (s *EligibilityService) CheckSubmittable(ctx context.Context, userID, catalogItemID uint) error {
	entitled, err := s.entitlementRepo.Exists(ctx, userID, catalogItemID)
	if err != nil {
		return fmt.Errorf("failed to check existing entitlement: %w", err)
	}
	if entitled {
		return errors.NewConflictError("user already has access to this item", "already_entitled")
	}

	pending, err := s.requestRepo.ExistsPending(ctx, userID, catalogItemID)
	if err != nil {
		return fmt.Errorf("failed to check pending request: %w", err)
	}
	if pending {
		return errors.NewConflictError("a pending request already exists for this item", "duplicate_pending")
	}

	return nil
}

// IsEntitled reports whether the user already holds the catalog item.
func (s *EligibilityService) IsEntitled(ctx context.Context, userID, catalogItemID uint) (bool, error) {
	return s.entitlementRepo.Exists(ctx, userID, catalogItemID)
}
