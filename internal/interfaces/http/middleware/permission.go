package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"accesshub/internal/shared/constants"
	"accesshub/internal/shared/logger"
	"accesshub/internal/shared/utils"
)

// PermissionChecker answers whether a subject may perform an action on a
// resource. Satisfied by the casbin enforcer.
type PermissionChecker interface {
	Enforce(subject string, resource string, action string) (bool, error)
}

type PermissionMiddleware struct {
	checker PermissionChecker
	logger  logger.Interface
}

func NewPermissionMiddleware(checker PermissionChecker, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		checker: checker,
		logger:  logger,
	}
}

// RequirePermission must run after RequireAuth. The role claim is used as
// the casbin subject, so policy changes apply without re-issuing tokens.
func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get(constants.ContextKeyUserID)
		if !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		subject := c.GetString(constants.ContextKeyUserRole)
		if subject == "" {
			if id, ok := userID.(uint); ok {
				subject = strconv.FormatUint(uint64(id), 10)
			}
		}

		allowed, err := m.checker.Enforce(subject, resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "user_id", userID, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "user_id", userID, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
