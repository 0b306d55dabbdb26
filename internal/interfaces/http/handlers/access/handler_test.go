package access

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accesshub/internal/application/access/dto"
	"accesshub/internal/application/access/usecases"
	"accesshub/internal/domain/accessrequest"
	"accesshub/internal/interfaces/http/handlers/testutil"
	"accesshub/internal/shared/authorization"
	"accesshub/internal/shared/errors"
)

type mockSubmitRequestUC struct {
	result *usecases.SubmitRequestResult
	err    error
	gotCmd *usecases.SubmitRequestCommand
}

func (m *mockSubmitRequestUC) Execute(_ context.Context, cmd usecases.SubmitRequestCommand) (*usecases.SubmitRequestResult, error) {
	m.gotCmd = &cmd
	return m.result, m.err
}

type mockReviewRequestUC struct {
	result *usecases.ReviewRequestResult
	err    error
	gotCmd *usecases.ReviewRequestCommand
}

func (m *mockReviewRequestUC) Execute(_ context.Context, cmd usecases.ReviewRequestCommand) (*usecases.ReviewRequestResult, error) {
	m.gotCmd = &cmd
	return m.result, m.err
}

type mockGetRequestUC struct {
	result *dto.AccessRequestDTO
	err    error
}

func (m *mockGetRequestUC) Execute(_ context.Context, _ usecases.GetRequestQuery) (*dto.AccessRequestDTO, error) {
	return m.result, m.err
}

type mockListRequestsUC struct {
	result   []dto.AccessRequestDTO
	err      error
	gotQuery *usecases.ListRequestsQuery
}

func (m *mockListRequestsUC) Execute(_ context.Context, query usecases.ListRequestsQuery) ([]dto.AccessRequestDTO, error) {
	m.gotQuery = &query
	return m.result, m.err
}

type mockListEntitlementsUC struct {
	result []dto.EntitlementDTO
	err    error
}

func (m *mockListEntitlementsUC) Execute(_ context.Context, _ usecases.ListEntitlementsQuery) ([]dto.EntitlementDTO, error) {
	return m.result, m.err
}

type testDeps struct {
	submitRequestUC    usecases.SubmitRequestExecutor
	reviewRequestUC    usecases.ReviewRequestExecutor
	getRequestUC       usecases.GetRequestExecutor
	listRequestsUC     usecases.ListRequestsExecutor
	listEntitlementsUC usecases.ListEntitlementsExecutor
}

func newTestAccessHandler(deps testDeps) *AccessHandler {
	return NewAccessHandler(
		deps.submitRequestUC,
		deps.reviewRequestUC,
		deps.getRequestUC,
		deps.listRequestsUC,
		deps.listEntitlementsUC,
		testutil.NewMockLogger(),
	)
}

func TestAccessHandler_SubmitRequest_Success(t *testing.T) {
	mockUC := &mockSubmitRequestUC{
		result: &usecases.SubmitRequestResult{
			RequestID:     1,
			CatalogItemID: 3,
			Status:        accessrequest.StatusPending.String(),
			RequestedAt:   "2026-08-27T10:00:00Z",
		},
	}
	handler := newTestAccessHandler(testDeps{submitRequestUC: mockUC})

	reqBody := SubmitRequestRequest{
		CatalogItemID: 3,
		Justification: "Need the quarterly numbers for planning",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/requests", reqBody)
	testutil.SetAuthContext(c, 7, authorization.RoleUser)

	handler.SubmitRequest(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, mockUC.gotCmd)
	assert.Equal(t, uint(7), mockUC.gotCmd.UserID)
	assert.Equal(t, uint(3), mockUC.gotCmd.CatalogItemID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestAccessHandler_SubmitRequest_BindError(t *testing.T) {
	handler := newTestAccessHandler(testDeps{submitRequestUC: &mockSubmitRequestUC{}})

	reqBody := map[string]any{"catalog_item_id": 3}
	c, w := testutil.NewTestContext(http.MethodPost, "/requests", reqBody)
	testutil.SetAuthContext(c, 7, authorization.RoleUser)

	handler.SubmitRequest(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAccessHandler_SubmitRequest_NotAuthenticated(t *testing.T) {
	handler := newTestAccessHandler(testDeps{submitRequestUC: &mockSubmitRequestUC{}})

	reqBody := SubmitRequestRequest{CatalogItemID: 3, Justification: "need it"}
	c, w := testutil.NewTestContext(http.MethodPost, "/requests", reqBody)

	handler.SubmitRequest(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAccessHandler_SubmitRequest_DuplicatePending(t *testing.T) {
	mockUC := &mockSubmitRequestUC{
		err: errors.NewConflictError("a pending request for this item already exists"),
	}
	handler := newTestAccessHandler(testDeps{submitRequestUC: mockUC})

	reqBody := SubmitRequestRequest{CatalogItemID: 3, Justification: "need it"}
	c, w := testutil.NewTestContext(http.MethodPost, "/requests", reqBody)
	testutil.SetAuthContext(c, 7, authorization.RoleUser)

	handler.SubmitRequest(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestAccessHandler_ListMyRequests_Success(t *testing.T) {
	mockUC := &mockListRequestsUC{
		result: []dto.AccessRequestDTO{
			{ID: 1, UserID: 7, CatalogItemID: 3, Status: "pending"},
			{ID: 2, UserID: 7, CatalogItemID: 4, Status: "approved"},
		},
	}
	handler := newTestAccessHandler(testDeps{listRequestsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/requests", nil)
	testutil.SetAuthContext(c, 7, authorization.RoleUser)

	handler.ListMyRequests(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, mockUC.gotQuery)
	assert.Equal(t, uint(7), mockUC.gotQuery.UserID)
}

func TestAccessHandler_GetRequest_Success(t *testing.T) {
	mockUC := &mockGetRequestUC{
		result: &dto.AccessRequestDTO{ID: 5, UserID: 7, Status: "pending"},
	}
	handler := newTestAccessHandler(testDeps{getRequestUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/requests/5", nil)
	testutil.SetURLParam(c, "id", "5")
	testutil.SetAuthContext(c, 7, authorization.RoleUser)

	handler.GetRequest(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAccessHandler_GetRequest_Forbidden(t *testing.T) {
	mockUC := &mockGetRequestUC{
		err: errors.NewForbiddenError("access request belongs to another user"),
	}
	handler := newTestAccessHandler(testDeps{getRequestUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/requests/5", nil)
	testutil.SetURLParam(c, "id", "5")
	testutil.SetAuthContext(c, 9, authorization.RoleUser)

	handler.GetRequest(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAccessHandler_GetRequest_InvalidID(t *testing.T) {
	handler := newTestAccessHandler(testDeps{getRequestUC: &mockGetRequestUC{}})

	c, w := testutil.NewTestContext(http.MethodGet, "/requests/abc", nil)
	testutil.SetURLParam(c, "id", "abc")
	testutil.SetAuthContext(c, 7, authorization.RoleUser)

	handler.GetRequest(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAccessHandler_ListEntitlements_Success(t *testing.T) {
	mockUC := &mockListEntitlementsUC{
		result: []dto.EntitlementDTO{
			{ID: 1, CatalogItemID: 3, CatalogItemName: "Quality Report"},
		},
	}
	handler := newTestAccessHandler(testDeps{listEntitlementsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/entitlements", nil)
	testutil.SetAuthContext(c, 7, authorization.RoleUser)

	handler.ListEntitlements(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, string(resp.Data), "Quality Report")
}

func TestAccessHandler_ListRequestsByStatus_DefaultsToPending(t *testing.T) {
	mockUC := &mockListRequestsUC{result: []dto.AccessRequestDTO{}}
	handler := newTestAccessHandler(testDeps{listRequestsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/requests", nil)
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)

	handler.ListRequestsByStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, mockUC.gotQuery)
	assert.Equal(t, accessrequest.StatusPending, mockUC.gotQuery.Status)
}

func TestAccessHandler_ListRequestsByStatus_ExplicitStatus(t *testing.T) {
	mockUC := &mockListRequestsUC{result: []dto.AccessRequestDTO{}}
	handler := newTestAccessHandler(testDeps{listRequestsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/requests", nil)
	testutil.SetQueryParams(c, map[string]string{"status": "approved"})
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)

	handler.ListRequestsByStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, mockUC.gotQuery)
	assert.Equal(t, accessrequest.StatusApproved, mockUC.gotQuery.Status)
}

func TestAccessHandler_ListRequestsByStatus_InvalidStatus(t *testing.T) {
	mockUC := &mockListRequestsUC{}
	handler := newTestAccessHandler(testDeps{listRequestsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/requests", nil)
	testutil.SetQueryParams(c, map[string]string{"status": "bogus"})
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)

	handler.ListRequestsByStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, mockUC.gotQuery)
}

func TestAccessHandler_ReviewRequest_Success(t *testing.T) {
	mockUC := &mockReviewRequestUC{
		result: &usecases.ReviewRequestResult{
			RequestID:  5,
			Status:     accessrequest.StatusApproved.String(),
			ReviewedAt: "2026-08-27T11:00:00Z",
		},
	}
	handler := newTestAccessHandler(testDeps{reviewRequestUC: mockUC})

	reqBody := ReviewRequestRequest{Decision: "approve", Comments: "looks fine"}
	c, w := testutil.NewTestContext(http.MethodPost, "/admin/requests/5/review", reqBody)
	testutil.SetURLParam(c, "id", "5")
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)

	handler.ReviewRequest(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, mockUC.gotCmd)
	assert.Equal(t, uint(5), mockUC.gotCmd.RequestID)
	assert.Equal(t, uint(1), mockUC.gotCmd.ReviewerID)
	assert.Equal(t, accessrequest.DecisionApprove, mockUC.gotCmd.Decision)
}

func TestAccessHandler_ReviewRequest_InvalidDecision(t *testing.T) {
	handler := newTestAccessHandler(testDeps{reviewRequestUC: &mockReviewRequestUC{}})

	reqBody := map[string]string{"decision": "maybe"}
	c, w := testutil.NewTestContext(http.MethodPost, "/admin/requests/5/review", reqBody)
	testutil.SetURLParam(c, "id", "5")
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)

	handler.ReviewRequest(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAccessHandler_ReviewRequest_AlreadyReviewed(t *testing.T) {
	mockUC := &mockReviewRequestUC{
		err: errors.NewStateError("access request has already been reviewed"),
	}
	handler := newTestAccessHandler(testDeps{reviewRequestUC: mockUC})

	reqBody := ReviewRequestRequest{Decision: "reject"}
	c, w := testutil.NewTestContext(http.MethodPost, "/admin/requests/5/review", reqBody)
	testutil.SetURLParam(c, "id", "5")
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)

	handler.ReviewRequest(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}
