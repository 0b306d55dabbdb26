package middleware

import (
	"github.com/gin-gonic/gin"

	"accesshub/internal/shared/constants"
	"accesshub/internal/shared/logger"
)

func Logger(log logger.Interface) gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		args := []any{
			"method", param.Method,
			"path", param.Path,
			"status", param.StatusCode,
			"latency", param.Latency,
			"client_ip", param.ClientIP,
			"user_agent", param.Request.UserAgent(),
		}

		if param.ErrorMessage != "" {
			args = append(args, "error", param.ErrorMessage)
		}

		if param.StatusCode >= 500 {
			log.Errorw("HTTP request completed", args...)
		} else if param.StatusCode >= 400 {
			log.Warnw("HTTP request completed", args...)
		} else {
			log.Debugw("HTTP request completed", args...)
		}

		return ""
	})
}

// RequestContext copies authenticated identity into structured log fields.
func RequestContext(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if userID, exists := c.Get(constants.ContextKeyUserID); exists && c.Writer.Status() >= 400 {
			log.Debugw("request identity",
				"path", c.Request.URL.Path,
				"user_id", userID,
				"status", c.Writer.Status())
		}
	}
}
