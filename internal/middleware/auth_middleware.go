package middleware

import (
	"context"
	"net/http"
	"strings"

	"prompt-vault/internal/services"
	"prompt-vault/internal/transport/httpdto"
	"prompt-vault/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware gates protected routes: it extracts the bearer token,
// verifies it and attaches the decoded identity to the request context. A
// missing token and an invalid one are reported distinctly.
func AuthMiddleware(service *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("token required"))
			c.Abort()
			return
		}

		identity, err := service.ParseAccessToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("invalid token"))
			c.Abort()
			return
		}

		ctx := services.WithIdentity(c.Request.Context(), identity)
		ctx = context.WithValue(ctx, logger.UsernameKey, identity.Username)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func extractBearer(c *gin.Context) string {
	value := c.GetHeader("Authorization")
	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
