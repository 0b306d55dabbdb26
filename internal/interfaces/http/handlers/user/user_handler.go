package user

import (
	"github.com/gin-gonic/gin"

	"accesshub/internal/application/user/usecases"
	"accesshub/internal/shared/logger"
	"accesshub/internal/shared/utils"
)

type UserHandler struct {
	createUserUC usecases.CreateUserExecutor
	listUsersUC  usecases.ListUsersExecutor
	logger       logger.Interface
}

func NewUserHandler(
	createUserUC usecases.CreateUserExecutor,
	listUsersUC usecases.ListUsersExecutor,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		createUserUC: createUserUC,
		listUsersUC:  listUsersUC,
		logger:       logger,
	}
}

// CreateUser handles POST /admin/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUserUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User created successfully")
}

// ListUsers handles GET /admin/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	users, total, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersQuery{
		Pagination: pagination,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, users, total, pagination.Page, pagination.PageSize)
}
