package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"microblog-backend/internal/shared/response"
	"microblog-backend/pkg/jwt"
)

const (
	// ContextUserID is the gin context key holding the authenticated user's
	// uuid.UUID. Absent for anonymous requests.
	ContextUserID = "userID"
	// ContextUsername holds the authenticated username.
	ContextUsername = "username"
)

// AuthMiddleware rejects requests without a valid Bearer access token. This
// is the API analogue of redirect-to-login: gated mutations answer 401 for
// anonymous callers.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, username, ok := identityFromHeader(c, manager)
		if !ok {
			response.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUsername, username)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves an identity when a valid token is present
// and silently continues as anonymous otherwise. Read endpoints use it to
// personalize responses (e.g. the "following" flag on a profile).
func OptionalAuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, username, ok := identityFromHeader(c, manager); ok {
			c.Set(ContextUserID, userID)
			c.Set(ContextUsername, username)
		}
		c.Next()
	}
}

func identityFromHeader(c *gin.Context, manager *jwt.Manager) (uuid.UUID, string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return uuid.Nil, "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return uuid.Nil, "", false
	}

	claims, err := manager.ValidateAccessToken(parts[1])
	if err != nil {
		return uuid.Nil, "", false
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, "", false
	}

	return userID, claims.Username, true
}

// UserIDFromContext returns the authenticated user id, or (uuid.Nil, false)
// for anonymous requests.
func UserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return id, true
}
