package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accesshub/internal/domain/accessrequest"
	"accesshub/internal/domain/catalog"
	"accesshub/internal/domain/user"
	"accesshub/internal/shared/authorization"
	"accesshub/internal/shared/errors"
)

func TestListRequestsUseCase_Execute_DefaultsToPending(t *testing.T) {
	var askedStatus accessrequest.Status

	requestRepo := &mockRequestRepository{
		ListByStatusFunc: func(ctx context.Context, status accessrequest.Status) ([]*accessrequest.AccessRequest, error) {
			askedStatus = status
			return []*accessrequest.AccessRequest{pendingRequest(t, 10)}, nil
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return testUser(t, id, authorization.RoleUser), nil
		},
	}
	catalogRepo := &mockCatalogRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Item, error) {
			return activeItem(t, id), nil
		},
	}

	useCase := NewListRequestsUseCase(requestRepo, userRepo, catalogRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListRequestsQuery{})

	require.NoError(t, err)
	assert.Equal(t, accessrequest.StatusPending, askedStatus)
	require.Len(t, result, 1)
	assert.Equal(t, uint(10), result[0].ID)
	assert.Equal(t, "pending", result[0].Status)
	assert.Equal(t, "jdoe", result[0].Username)
	assert.Equal(t, "Quality Report", result[0].CatalogItemName)
}

func TestListRequestsUseCase_Execute_ByUser(t *testing.T) {
	var askedUser uint

	requestRepo := &mockRequestRepository{
		ListByUserFunc: func(ctx context.Context, userID uint) ([]*accessrequest.AccessRequest, error) {
			askedUser = userID
			return []*accessrequest.AccessRequest{pendingRequest(t, 10), reviewedRequest(t, 11)}, nil
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return testUser(t, id, authorization.RoleUser), nil
		},
	}
	catalogRepo := &mockCatalogRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Item, error) {
			return activeItem(t, id), nil
		},
	}

	useCase := NewListRequestsUseCase(requestRepo, userRepo, catalogRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListRequestsQuery{UserID: 7})

	require.NoError(t, err)
	assert.Equal(t, uint(7), askedUser)
	require.Len(t, result, 2)

	assert.Nil(t, result[0].ReviewedAt)
	require.NotNil(t, result[1].ReviewedAt)
	require.NotNil(t, result[1].ReviewerID)
	assert.Equal(t, uint(2), *result[1].ReviewerID)
	assert.Equal(t, "Jordan Doe", result[1].ReviewerName)
}

func TestListRequestsUseCase_Execute_InvalidStatus(t *testing.T) {
	useCase := NewListRequestsUseCase(&mockRequestRepository{}, &mockUserRepository{}, &mockCatalogRepository{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListRequestsQuery{Status: accessrequest.Status("bogus")})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

func TestListRequestsUseCase_Execute_MissingLookupsDoNotFail(t *testing.T) {
	requestRepo := &mockRequestRepository{
		ListByStatusFunc: func(ctx context.Context, status accessrequest.Status) ([]*accessrequest.AccessRequest, error) {
			return []*accessrequest.AccessRequest{pendingRequest(t, 10)}, nil
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return nil, context.DeadlineExceeded
		},
	}
	catalogRepo := &mockCatalogRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Item, error) {
			return nil, context.DeadlineExceeded
		},
	}

	useCase := NewListRequestsUseCase(requestRepo, userRepo, catalogRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListRequestsQuery{})

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Empty(t, result[0].Username)
	assert.Empty(t, result[0].CatalogItemName)
}
