package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"pantryshare/internal/handler/httperr"
	"pantryshare/internal/pkg/identity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// IdentityResolver maps a bearer token to a user id. Every failure collapses
// into identity.ErrUnauthenticated so the middleware never has to distinguish
// expired from malformed from unknown.
type IdentityResolver interface {
	Resolve(token string) (uuid.UUID, error)
}

var _ IdentityResolver = (*identity.Service)(nil)

type AuthMiddleware struct {
	resolver IdentityResolver
}

const ctxUserIDKey = "user_id"

func NewAuthMiddleware(resolver IdentityResolver) *AuthMiddleware {
	return &AuthMiddleware{resolver: resolver}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, identity.ErrUnauthenticated, "Access token required")
			return
		}

		userID, err := m.resolver.Resolve(token)
		if err != nil {
			slog.Warn("Token resolution failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, identity.ErrUnauthenticated, "Invalid or expired token")
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}
