package middleware

import (
	"net/http"

	"prompt-vault/internal/transport/httpdto"
	"prompt-vault/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Recovery is the top-level fallback: anything unanticipated becomes a 500
// with details logged server-side only.
func Recovery(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log := l
				if log == nil {
					log = logger.GetGlobalLogger()
				}
				if log != nil {
					log.Errorf("panic recovered: %v", r)
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httpdto.NewErrorResponse("internal server error"))
			}
		}()
		c.Next()
	}
}
