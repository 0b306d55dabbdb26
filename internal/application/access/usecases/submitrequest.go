package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"accesshub/internal/domain/accessrequest"
	"accesshub/internal/domain/catalog"
	"accesshub/internal/shared/errors"
	"accesshub/internal/shared/logger"
)

type SubmitRequestCommand struct {
	UserID        uint
	CatalogItemID uint
	Justification string
}

type SubmitRequestResult struct {
	RequestID     uint
	CatalogItemID uint
	Status        string
	RequestedAt   string
}

// SubmitRequestUseCase appends a new pending request to the ledger. The
// eligibility checks and the insert run inside one transaction so two
// concurrent submissions for the same pair cannot both pass the checks.
type SubmitRequestUseCase struct {
	requestRepo accessrequest.Repository
	catalogRepo catalog.Repository
	eligibility *accessrequest.EligibilityService
	txManager   TransactionManager
	logger      logger.Interface
}

func NewSubmitRequestUseCase(
	requestRepo accessrequest.Repository,
	catalogRepo catalog.Repository,
	eligibility *accessrequest.EligibilityService,
	txManager TransactionManager,
	logger logger.Interface,
) *SubmitRequestUseCase {
	return &SubmitRequestUseCase{
		requestRepo: requestRepo,
		catalogRepo: catalogRepo,
		eligibility: eligibility,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *SubmitRequestUseCase) Execute(ctx context.Context, cmd SubmitRequestCommand) (*SubmitRequestResult, error) {
	uc.logger.Infow("executing submit request use case", "user_id", cmd.UserID, "catalog_item_id", cmd.CatalogItemID)

	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.CatalogItemID == 0 {
		return nil, errors.NewValidationError("catalog item ID is required")
	}

	item, err := uc.catalogRepo.GetByID(ctx, cmd.CatalogItemID)
	if err != nil {
		uc.logger.Errorw("failed to get catalog item", "catalog_item_id", cmd.CatalogItemID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("catalog item %d not found", cmd.CatalogItemID))
	}
	if !item.IsActive() {
		return nil, errors.NewValidationError("catalog item is not requestable")
	}

	request, err := accessrequest.NewAccessRequest(cmd.UserID, cmd.CatalogItemID, cmd.Justification)
	if err != nil {
		uc.logger.Warnw("invalid access request", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.eligibility.CheckSubmittable(txCtx, cmd.UserID, cmd.CatalogItemID); err != nil {
			return err
		}
		return uc.requestRepo.Save(txCtx, request)
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		if stderrors.Is(err, accessrequest.ErrMissingJustification) {
			return nil, errors.NewValidationError(err.Error())
		}
		uc.logger.Errorw("failed to save access request", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to submit access request")
	}

	uc.logger.Infow("access request submitted",
		"request_id", request.ID(),
		"user_id", cmd.UserID,
		"catalog_item_id", cmd.CatalogItemID,
	)

	return &SubmitRequestResult{
		RequestID:     request.ID(),
		CatalogItemID: request.CatalogItemID(),
		Status:        request.Status().String(),
		RequestedAt:   request.RequestedAt().Format(time.RFC3339),
	}, nil
}
