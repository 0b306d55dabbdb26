package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"accesshub/internal/application/user/usecases"
	infraauth "accesshub/internal/infrastructure/auth"
	"accesshub/internal/shared/constants"
	"accesshub/internal/shared/logger"
	"accesshub/internal/shared/utils"
)

type AuthHandler struct {
	loginUC   usecases.LoginExecutor
	getUserUC usecases.GetUserExecutor
	logger    logger.Interface
}

func NewAuthHandler(
	loginUC usecases.LoginExecutor,
	getUserUC usecases.GetUserExecutor,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUC:   loginUC,
		getUserUC: getUserUC,
		logger:    logger,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", gin.H{
		"user":         result.User,
		"access_token": result.AccessToken,
		"expires_in":   result.ExpiresIn,
	})
}

// LoginHint handles GET /auth/login-hint. The hint is the server's OS
// username, a convenience for single-user installs; it never grants
// anything by itself.
func (h *AuthHandler) LoginHint(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", LoginHintResponse{
		Username: infraauth.LocalUsername(),
	})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), usecases.GetUserQuery{
		UserID: userID.(uint),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
