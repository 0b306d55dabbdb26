package usecases

import (
	"context"

	"accesshub/internal/application/access/dto"
)

type SubmitRequestExecutor interface {
	Execute(ctx context.Context, cmd SubmitRequestCommand) (*SubmitRequestResult, error)
}

type ReviewRequestExecutor interface {
	Execute(ctx context.Context, cmd ReviewRequestCommand) (*ReviewRequestResult, error)
}

type GetRequestExecutor interface {
	Execute(ctx context.Context, query GetRequestQuery) (*dto.AccessRequestDTO, error)
}

type ListRequestsExecutor interface {
	Execute(ctx context.Context, query ListRequestsQuery) ([]dto.AccessRequestDTO, error)
}

type ListRequestableExecutor interface {
	Execute(ctx context.Context, query ListRequestableQuery) ([]dto.CatalogItemDTO, error)
}

type CreateCatalogItemExecutor interface {
	Execute(ctx context.Context, cmd CreateCatalogItemCommand) (*CreateCatalogItemResult, error)
}

type ListEntitlementsExecutor interface {
	Execute(ctx context.Context, query ListEntitlementsQuery) ([]dto.EntitlementDTO, error)
}

// TransactionManager runs a function inside one database transaction.
// Satisfied by the shared db transaction manager.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReviewNotification carries what the outcome email needs.
type ReviewNotification struct {
	RecipientEmail string
	RecipientName  string
	ItemName       string
	Status         string
	Comments       string
}

// ReviewNotifier delivers review outcome notifications to requesters.
// Implementations must be safe to call after the review has committed.
type ReviewNotifier interface {
	SendReviewNotification(ctx context.Context, n ReviewNotification) error
}
