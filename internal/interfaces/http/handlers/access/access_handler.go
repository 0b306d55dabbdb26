package access

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"accesshub/internal/application/access/usecases"
	"accesshub/internal/domain/accessrequest"
	"accesshub/internal/shared/authorization"
	"accesshub/internal/shared/constants"
	"accesshub/internal/shared/errors"
	"accesshub/internal/shared/logger"
	"accesshub/internal/shared/utils"
)

type AccessHandler struct {
	submitRequestUC    usecases.SubmitRequestExecutor
	reviewRequestUC    usecases.ReviewRequestExecutor
	getRequestUC       usecases.GetRequestExecutor
	listRequestsUC     usecases.ListRequestsExecutor
	listEntitlementsUC usecases.ListEntitlementsExecutor
	logger             logger.Interface
}

func NewAccessHandler(
	submitRequestUC usecases.SubmitRequestExecutor,
	reviewRequestUC usecases.ReviewRequestExecutor,
	getRequestUC usecases.GetRequestExecutor,
	listRequestsUC usecases.ListRequestsExecutor,
	listEntitlementsUC usecases.ListEntitlementsExecutor,
	logger logger.Interface,
) *AccessHandler {
	return &AccessHandler{
		submitRequestUC:    submitRequestUC,
		reviewRequestUC:    reviewRequestUC,
		getRequestUC:       getRequestUC,
		listRequestsUC:     listRequestsUC,
		listEntitlementsUC: listEntitlementsUC,
		logger:             logger,
	}
}

// SubmitRequest handles POST /requests
func (h *AccessHandler) SubmitRequest(c *gin.Context) {
	var req SubmitRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for submit request", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	result, err := h.submitRequestUC.Execute(c.Request.Context(), req.ToCommand(userID.(uint)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Access request submitted successfully")
}

// ListMyRequests handles GET /requests
func (h *AccessHandler) ListMyRequests(c *gin.Context) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	result, err := h.listRequestsUC.Execute(c.Request.Context(), usecases.ListRequestsQuery{
		UserID: userID.(uint),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetRequest handles GET /requests/:id
func (h *AccessHandler) GetRequest(c *gin.Context) {
	requestID, err := utils.ParseUintParam(c, "id", "access request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}
	role := authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole))

	result, err := h.getRequestUC.Execute(c.Request.Context(), usecases.GetRequestQuery{
		RequestID:   requestID,
		RequesterID: userID.(uint),
		Role:        role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListEntitlements handles GET /entitlements
func (h *AccessHandler) ListEntitlements(c *gin.Context) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	result, err := h.listEntitlementsUC.Execute(c.Request.Context(), usecases.ListEntitlementsQuery{
		UserID: userID.(uint),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListRequestsByStatus handles GET /admin/requests
func (h *AccessHandler) ListRequestsByStatus(c *gin.Context) {
	status := accessrequest.Status(c.DefaultQuery("status", accessrequest.StatusPending.String()))
	if !status.IsValid() {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid status filter"))
		return
	}

	result, err := h.listRequestsUC.Execute(c.Request.Context(), usecases.ListRequestsQuery{
		Status: status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ReviewRequest handles POST /admin/requests/:id/review
func (h *AccessHandler) ReviewRequest(c *gin.Context) {
	requestID, err := utils.ParseUintParam(c, "id", "access request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReviewRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for review request", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	result, err := h.reviewRequestUC.Execute(c.Request.Context(), req.ToCommand(requestID, userID.(uint)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Access request reviewed successfully", result)
}
