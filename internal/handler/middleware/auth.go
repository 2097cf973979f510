package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"couponhub/internal/handler/httperr"
	"couponhub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxAdminIDKey   = "admin_id"
	ctxJWTClaimsKey = "jwt_claims"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth rejects with 403 for both a missing and an invalid token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			httperr.AbortWithError(c, http.StatusForbidden, nil, "Access denied")
			return
		}

		adminID, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusForbidden, err, "Invalid token")
			return
		}

		c.Set(ctxAdminIDKey, adminID)
		c.Set(ctxJWTClaimsKey, map[string]any{
			"id": adminID.String(),
		})
		c.Next()
	}
}

// bearerToken returns the second space-separated word; the scheme itself is not checked.
func bearerToken(header string) string {
	parts := strings.Split(header, " ")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

func GetAdminID(c *gin.Context) (uuid.UUID, bool) {
	adminID, exists := c.Get(ctxAdminIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := adminID.(uuid.UUID)
	return id, ok
}
