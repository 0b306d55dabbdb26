package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accesshub/internal/domain/accessrequest"
	"accesshub/internal/domain/catalog"
	"accesshub/internal/shared/errors"
)

func activeItem(t *testing.T, id uint) *catalog.Item {
	t.Helper()
	item, err := catalog.ReconstructItem(id, "Quality Report", "Weekly quality metrics", "Reports", "/reports/quality", true, time.Now().UTC())
	require.NoError(t, err)
	return item
}

func newSubmitUseCase(
	requestRepo *mockRequestRepository,
	catalogRepo *mockCatalogRepository,
	entitlementRepo *mockEntitlementRepository,
) *SubmitRequestUseCase {
	eligibility := accessrequest.NewEligibilityService(entitlementRepo, requestRepo)
	return NewSubmitRequestUseCase(requestRepo, catalogRepo, eligibility, &mockTransactionManager{}, &mockLogger{})
}

func TestSubmitRequestUseCase_Execute_Success(t *testing.T) {
	var saved *accessrequest.AccessRequest

	requestRepo := &mockRequestRepository{
		SaveFunc: func(ctx context.Context, r *accessrequest.AccessRequest) error {
			saved = r
			return r.SetID(42)
		},
	}
	catalogRepo := &mockCatalogRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Item, error) {
			return activeItem(t, id), nil
		},
	}

	useCase := newSubmitUseCase(requestRepo, catalogRepo, &mockEntitlementRepository{})
	result, err := useCase.Execute(context.Background(), SubmitRequestCommand{
		UserID:        7,
		CatalogItemID: 3,
		Justification: "  need it for the weekly review  ",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(42), result.RequestID)
	assert.Equal(t, "pending", result.Status)
	require.NotNil(t, saved)
	assert.Equal(t, "need it for the weekly review", saved.Justification())
}

func TestSubmitRequestUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name          string
		command       SubmitRequestCommand
		expectedError string
	}{
		{
			name:          "missing user ID",
			command:       SubmitRequestCommand{CatalogItemID: 3, Justification: "need it"},
			expectedError: "user ID is required",
		},
		{
			name:          "missing catalog item ID",
			command:       SubmitRequestCommand{UserID: 7, Justification: "need it"},
			expectedError: "catalog item ID is required",
		},
		{
			name:          "empty justification",
			command:       SubmitRequestCommand{UserID: 7, CatalogItemID: 3, Justification: "   "},
			expectedError: "justification is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalogRepo := &mockCatalogRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Item, error) {
					return activeItem(t, id), nil
				},
			}

			useCase := newSubmitUseCase(&mockRequestRepository{}, catalogRepo, &mockEntitlementRepository{})
			result, err := useCase.Execute(context.Background(), tt.command)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestSubmitRequestUseCase_Execute_InactiveItem(t *testing.T) {
	catalogRepo := &mockCatalogRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Item, error) {
			item := activeItem(t, id)
			item.Deactivate()
			return item, nil
		},
	}

	useCase := newSubmitUseCase(&mockRequestRepository{}, catalogRepo, &mockEntitlementRepository{})
	result, err := useCase.Execute(context.Background(), SubmitRequestCommand{
		UserID: 7, CatalogItemID: 3, Justification: "need it",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "not requestable")
}

func TestSubmitRequestUseCase_Execute_AlreadyEntitled(t *testing.T) {
	catalogRepo := &mockCatalogRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Item, error) {
			return activeItem(t, id), nil
		},
	}
	entitlementRepo := &mockEntitlementRepository{
		ExistsFunc: func(ctx context.Context, userID, catalogItemID uint) (bool, error) {
			return true, nil
		},
	}
	requestRepo := &mockRequestRepository{
		SaveFunc: func(ctx context.Context, r *accessrequest.AccessRequest) error {
			t.Fatal("save must not run when the user is already entitled")
			return nil
		},
	}

	useCase := newSubmitUseCase(requestRepo, catalogRepo, entitlementRepo)
	result, err := useCase.Execute(context.Background(), SubmitRequestCommand{
		UserID: 7, CatalogItemID: 3, Justification: "need it",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsConflictError(err))
	assert.Equal(t, "already_entitled", errors.GetAppError(err).Details)
}

func TestSubmitRequestUseCase_Execute_DuplicatePending(t *testing.T) {
	catalogRepo := &mockCatalogRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Item, error) {
			return activeItem(t, id), nil
		},
	}
	requestRepo := &mockRequestRepository{
		ExistsPendingFunc: func(ctx context.Context, userID, catalogItemID uint) (bool, error) {
			return true, nil
		},
	}

	useCase := newSubmitUseCase(requestRepo, catalogRepo, &mockEntitlementRepository{})
	result, err := useCase.Execute(context.Background(), SubmitRequestCommand{
		UserID: 7, CatalogItemID: 3, Justification: "need it",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsConflictError(err))
	assert.Equal(t, "duplicate_pending", errors.GetAppError(err).Details)
}

func TestSubmitRequestUseCase_Execute_ItemNotFound(t *testing.T) {
	catalogRepo := &mockCatalogRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Item, error) {
			return nil, context.DeadlineExceeded
		},
	}

	useCase := newSubmitUseCase(&mockRequestRepository{}, catalogRepo, &mockEntitlementRepository{})
	result, err := useCase.Execute(context.Background(), SubmitRequestCommand{
		UserID: 7, CatalogItemID: 99, Justification: "need it",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestSubmitRequestUseCase_Execute_ChecksRunInsideTransaction(t *testing.T) {
	inTx := false
	txManager := &mockTransactionManager{
		RunInTransactionFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			inTx = true
			defer func() { inTx = false }()
			return fn(ctx)
		},
	}

	entitlementRepo := &mockEntitlementRepository{
		ExistsFunc: func(ctx context.Context, userID, catalogItemID uint) (bool, error) {
			assert.True(t, inTx, "eligibility check must run inside the transaction")
			return false, nil
		},
	}
	requestRepo := &mockRequestRepository{
		SaveFunc: func(ctx context.Context, r *accessrequest.AccessRequest) error {
			assert.True(t, inTx, "save must run inside the transaction")
			return r.SetID(1)
		},
	}
	catalogRepo := &mockCatalogRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Item, error) {
			return activeItem(t, id), nil
		},
	}

	eligibility := accessrequest.NewEligibilityService(entitlementRepo, requestRepo)
	useCase := NewSubmitRequestUseCase(requestRepo, catalogRepo, eligibility, txManager, &mockLogger{})

	_, err := useCase.Execute(context.Background(), SubmitRequestCommand{
		UserID: 7, CatalogItemID: 3, Justification: "need it",
	})
	require.NoError(t, err)
}
