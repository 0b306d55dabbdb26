package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accesshub/internal/domain/accessrequest"
	"accesshub/internal/domain/catalog"
	"accesshub/internal/domain/entitlement"
	"accesshub/internal/domain/user"
	"accesshub/internal/shared/authorization"
	"accesshub/internal/shared/errors"
)

func testUser(t *testing.T, id uint, role authorization.UserRole) *user.User {
	t.Helper()
	now := time.Now().UTC()
	u, err := user.ReconstructUser(id, "jdoe", "jdoe@corp.example", "Jordan Doe", role, "hash", nil, now, now)
	require.NoError(t, err)
	return u
}

func pendingRequest(t *testing.T, id uint) *accessrequest.AccessRequest {
	t.Helper()
	r, err := accessrequest.ReconstructAccessRequest(id, 7, 3, "need it", accessrequest.StatusPending, time.Now().UTC(), nil, nil, "", 1)
	require.NoError(t, err)
	return r
}

func reviewedRequest(t *testing.T, id uint) *accessrequest.AccessRequest {
	t.Helper()
	now := time.Now().UTC()
	reviewer := uint(2)
	r, err := accessrequest.ReconstructAccessRequest(id, 7, 3, "need it", accessrequest.StatusApproved, now.Add(-time.Hour), &now, &reviewer, "ok", 2)
	require.NoError(t, err)
	return r
}

func adminUserRepo(t *testing.T) *mockUserRepository {
	return &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			if id == 2 {
				return testUser(t, id, authorization.RoleAdmin), nil
			}
			return testUser(t, id, authorization.RoleUser), nil
		},
	}
}

func TestReviewRequestUseCase_Execute_Approve(t *testing.T) {
	var granted *entitlement.Entitlement
	var notified *ReviewNotification

	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*accessrequest.AccessRequest, error) {
			return pendingRequest(t, id), nil
		},
	}
	entitlementRepo := &mockEntitlementRepository{
		CreateFunc: func(ctx context.Context, e *entitlement.Entitlement) error {
			granted = e
			return nil
		},
	}
	catalogRepo := &mockCatalogRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Item, error) {
			return activeItem(t, id), nil
		},
	}
	notifier := &mockReviewNotifier{
		SendReviewNotificationFunc: func(ctx context.Context, n ReviewNotification) error {
			notified = &n
			return nil
		},
	}

	useCase := NewReviewRequestUseCase(requestRepo, entitlementRepo, adminUserRepo(t), catalogRepo, &mockTransactionManager{}, notifier, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ReviewRequestCommand{
		RequestID:  10,
		ReviewerID: 2,
		Decision:   accessrequest.DecisionApprove,
		Comments:   "approved for the quarter",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "approved", result.Status)
	assert.NotEmpty(t, result.ReviewedAt)

	require.NotNil(t, granted)
	assert.Equal(t, uint(7), granted.UserID())
	assert.Equal(t, uint(3), granted.CatalogItemID())
	assert.Equal(t, uint(2), granted.GrantedBy())
	requestID, ok := granted.GetMetadata("request_id")
	require.True(t, ok)
	assert.Equal(t, uint(10), requestID)

	require.NotNil(t, notified)
	assert.Equal(t, "jdoe@corp.example", notified.RecipientEmail)
	assert.Equal(t, "Quality Report", notified.ItemName)
	assert.Equal(t, "approved", notified.Status)
}

func TestReviewRequestUseCase_Execute_Reject(t *testing.T) {
	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*accessrequest.AccessRequest, error) {
			return pendingRequest(t, id), nil
		},
	}
	entitlementRepo := &mockEntitlementRepository{
		CreateFunc: func(ctx context.Context, e *entitlement.Entitlement) error {
			t.Fatal("rejection must not grant an entitlement")
			return nil
		},
	}

	useCase := NewReviewRequestUseCase(requestRepo, entitlementRepo, adminUserRepo(t), &mockCatalogRepository{}, &mockTransactionManager{}, nil, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ReviewRequestCommand{
		RequestID:  10,
		ReviewerID: 2,
		Decision:   accessrequest.DecisionReject,
		Comments:   "insufficient justification",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "rejected", result.Status)
}

func TestReviewRequestUseCase_Execute_NonAdminForbidden(t *testing.T) {
	useCase := NewReviewRequestUseCase(&mockRequestRepository{}, &mockEntitlementRepository{}, adminUserRepo(t), &mockCatalogRepository{}, &mockTransactionManager{}, nil, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ReviewRequestCommand{
		RequestID:  10,
		ReviewerID: 5,
		Decision:   accessrequest.DecisionApprove,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestReviewRequestUseCase_Execute_AlreadyReviewed(t *testing.T) {
	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*accessrequest.AccessRequest, error) {
			return reviewedRequest(t, id), nil
		},
		UpdateFunc: func(ctx context.Context, r *accessrequest.AccessRequest) error {
			t.Fatal("update must not run for an already reviewed request")
			return nil
		},
	}

	useCase := NewReviewRequestUseCase(requestRepo, &mockEntitlementRepository{}, adminUserRepo(t), &mockCatalogRepository{}, &mockTransactionManager{}, nil, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ReviewRequestCommand{
		RequestID:  10,
		ReviewerID: 2,
		Decision:   accessrequest.DecisionReject,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsStateError(err))
}

func TestReviewRequestUseCase_Execute_LostUpdateRace(t *testing.T) {
	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*accessrequest.AccessRequest, error) {
			return pendingRequest(t, id), nil
		},
		UpdateFunc: func(ctx context.Context, r *accessrequest.AccessRequest) error {
			return accessrequest.ErrAlreadyReviewed
		},
	}

	useCase := NewReviewRequestUseCase(requestRepo, &mockEntitlementRepository{}, adminUserRepo(t), &mockCatalogRepository{}, &mockTransactionManager{}, nil, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ReviewRequestCommand{
		RequestID:  10,
		ReviewerID: 2,
		Decision:   accessrequest.DecisionApprove,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsStateError(err))
}

func TestReviewRequestUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name          string
		command       ReviewRequestCommand
		expectedError string
	}{
		{
			name:          "missing request ID",
			command:       ReviewRequestCommand{ReviewerID: 2, Decision: accessrequest.DecisionApprove},
			expectedError: "request ID is required",
		},
		{
			name:          "missing reviewer ID",
			command:       ReviewRequestCommand{RequestID: 10, Decision: accessrequest.DecisionApprove},
			expectedError: "reviewer ID is required",
		},
		{
			name:          "invalid decision",
			command:       ReviewRequestCommand{RequestID: 10, ReviewerID: 2, Decision: accessrequest.Decision("maybe")},
			expectedError: "decision must be approve or reject",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewReviewRequestUseCase(&mockRequestRepository{}, &mockEntitlementRepository{}, adminUserRepo(t), &mockCatalogRepository{}, &mockTransactionManager{}, nil, &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.command)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestReviewRequestUseCase_Execute_NotificationFailureDoesNotFailReview(t *testing.T) {
	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*accessrequest.AccessRequest, error) {
			return pendingRequest(t, id), nil
		},
	}
	notifier := &mockReviewNotifier{
		SendReviewNotificationFunc: func(ctx context.Context, n ReviewNotification) error {
			return context.DeadlineExceeded
		},
	}

	useCase := NewReviewRequestUseCase(requestRepo, &mockEntitlementRepository{}, adminUserRepo(t), &mockCatalogRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Item, error) {
			return activeItem(t, id), nil
		},
	}, &mockTransactionManager{}, notifier, &mockLogger{})

	result, err := useCase.Execute(context.Background(), ReviewRequestCommand{
		RequestID:  10,
		ReviewerID: 2,
		Decision:   accessrequest.DecisionApprove,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "approved", result.Status)
}
