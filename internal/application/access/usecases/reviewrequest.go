package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"accesshub/internal/domain/accessrequest"
	"accesshub/internal/domain/catalog"
	"accesshub/internal/domain/entitlement"
	"accesshub/internal/domain/user"
	"accesshub/internal/shared/errors"
	"accesshub/internal/shared/logger"
)

type ReviewRequestCommand struct {
	RequestID  uint
	ReviewerID uint
	Decision   accessrequest.Decision
	Comments   string
}

type ReviewRequestResult struct {
	RequestID  uint
	Status     string
	ReviewedAt string
}

// ReviewRequestUseCase decides a pending request. The decision, the ledger
// update and the entitlement grant run inside one transaction; the version
// guard on the update turns a lost review race into a state error instead
// of a silent overwrite. Notification is sent after commit, best effort.
type ReviewRequestUseCase struct {
	requestRepo     accessrequest.Repository
	entitlementRepo entitlement.Repository
	userRepo        user.Repository
	catalogRepo     catalog.Repository
	txManager       TransactionManager
	notifier        ReviewNotifier
	logger          logger.Interface
}

func NewReviewRequestUseCase(
	requestRepo accessrequest.Repository,
	entitlementRepo entitlement.Repository,
	userRepo user.Repository,
	catalogRepo catalog.Repository,
	txManager TransactionManager,
	notifier ReviewNotifier,
	logger logger.Interface,
) *ReviewRequestUseCase {
	return &ReviewRequestUseCase{
		requestRepo:     requestRepo,
		entitlementRepo: entitlementRepo,
		userRepo:        userRepo,
		catalogRepo:     catalogRepo,
		txManager:       txManager,
		notifier:        notifier,
		logger:          logger,
	}
}

func (uc *ReviewRequestUseCase) Execute(ctx context.Context, cmd ReviewRequestCommand) (*ReviewRequestResult, error) {
	uc.logger.Infow("executing review request use case",
		"request_id", cmd.RequestID,
		"reviewer_id", cmd.ReviewerID,
		"decision", cmd.Decision,
	)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid review request command", "error", err)
		return nil, err
	}

	reviewer, err := uc.userRepo.GetByID(ctx, cmd.ReviewerID)
	if err != nil {
		uc.logger.Errorw("failed to get reviewer", "reviewer_id", cmd.ReviewerID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("reviewer %d not found", cmd.ReviewerID))
	}
	if !reviewer.IsAdmin() {
		return nil, errors.NewForbiddenError("only administrators can review access requests")
	}

	var request *accessrequest.AccessRequest
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		request, err = uc.requestRepo.GetByID(txCtx, cmd.RequestID)
		if err != nil {
			return errors.NewNotFoundError(fmt.Sprintf("access request %d not found", cmd.RequestID))
		}

		switch cmd.Decision {
		case accessrequest.DecisionApprove:
			err = request.Approve(cmd.ReviewerID, cmd.Comments)
		case accessrequest.DecisionReject:
			err = request.Reject(cmd.ReviewerID, cmd.Comments)
		}
		if err != nil {
			if stderrors.Is(err, accessrequest.ErrAlreadyReviewed) {
				return errors.NewStateError("request has already been reviewed", request.Status().String())
			}
			return errors.NewValidationError(err.Error())
		}

		if err := uc.requestRepo.Update(txCtx, request); err != nil {
			if stderrors.Is(err, accessrequest.ErrAlreadyReviewed) {
				return errors.NewStateError("request has already been reviewed")
			}
			return fmt.Errorf("failed to update access request: %w", err)
		}

		if cmd.Decision == accessrequest.DecisionApprove {
			grant, err := entitlement.NewEntitlement(request.UserID(), request.CatalogItemID(), cmd.ReviewerID)
			if err != nil {
				return fmt.Errorf("failed to build entitlement: %w", err)
			}
			grant.SetMetadata("request_id", request.ID())
			if err := uc.entitlementRepo.Create(txCtx, grant); err != nil {
				return fmt.Errorf("failed to grant entitlement: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to review access request", "request_id", cmd.RequestID, "error", err)
		return nil, errors.NewInternalError("failed to review access request")
	}

	uc.logger.Infow("access request reviewed",
		"request_id", request.ID(),
		"status", request.Status(),
		"reviewer_id", cmd.ReviewerID,
	)

	uc.notifyRequester(ctx, request)

	return &ReviewRequestResult{
		RequestID:  request.ID(),
		Status:     request.Status().String(),
		ReviewedAt: request.ReviewedAt().Format(time.RFC3339),
	}, nil
}

func (uc *ReviewRequestUseCase) validateCommand(cmd ReviewRequestCommand) error {
	if cmd.RequestID == 0 {
		return errors.NewValidationError("request ID is required")
	}
	if cmd.ReviewerID == 0 {
		return errors.NewValidationError("reviewer ID is required")
	}
	if !cmd.Decision.IsValid() {
		return errors.NewValidationError("decision must be approve or reject")
	}
	return nil
}

// notifyRequester emails the requesting user about the outcome. Failures
// are logged and swallowed; the review already committed.
func (uc *ReviewRequestUseCase) notifyRequester(ctx context.Context, request *accessrequest.AccessRequest) {
	if uc.notifier == nil {
		return
	}

	requester, err := uc.userRepo.GetByID(ctx, request.UserID())
	if err != nil {
		uc.logger.Warnw("failed to load requester for notification", "user_id", request.UserID(), "error", err)
		return
	}

	itemName := fmt.Sprintf("catalog item %d", request.CatalogItemID())
	if item, err := uc.catalogRepo.GetByID(ctx, request.CatalogItemID()); err == nil {
		itemName = item.Name()
	}

	notification := ReviewNotification{
		RecipientEmail: requester.Email(),
		RecipientName:  requester.FullName(),
		ItemName:       itemName,
		Status:         request.Status().String(),
		Comments:       request.ReviewerComments(),
	}
	if err := uc.notifier.SendReviewNotification(ctx, notification); err != nil {
		uc.logger.Warnw("failed to send review notification", "request_id", request.ID(), "error", err)
	}
}
