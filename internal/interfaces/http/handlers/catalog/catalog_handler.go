package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"accesshub/internal/application/access/usecases"
	"accesshub/internal/shared/constants"
	"accesshub/internal/shared/logger"
	"accesshub/internal/shared/utils"
)

type CatalogHandler struct {
	listRequestableUC usecases.ListRequestableExecutor
	createItemUC      usecases.CreateCatalogItemExecutor
	logger            logger.Interface
}

func NewCatalogHandler(
	listRequestableUC usecases.ListRequestableExecutor,
	createItemUC usecases.CreateCatalogItemExecutor,
	logger logger.Interface,
) *CatalogHandler {
	return &CatalogHandler{
		listRequestableUC: listRequestableUC,
		createItemUC:      createItemUC,
		logger:            logger,
	}
}

// ListCatalog handles GET /catalog. Active items the caller does not
// already hold are returned, each flagged available or pending so the
// portal renders request buttons and badges in one pass.
func (h *CatalogHandler) ListCatalog(c *gin.Context) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	query := usecases.ListRequestableQuery{
		UserID: userID.(uint),
		Search: c.Query("search"),
	}

	result, err := h.listRequestableUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateCatalogItem handles POST /admin/catalog
func (h *CatalogHandler) CreateCatalogItem(c *gin.Context) {
	var req CreateCatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create catalog item", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createItemUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Catalog item created successfully")
}
