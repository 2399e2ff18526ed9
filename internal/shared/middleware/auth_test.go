package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microblog-backend/pkg/jwt"
)

func newTestManager() *jwt.Manager {
	return jwt.NewManager("test-secret", 15*time.Minute, 72*time.Hour)
}

// seenIdentity records what the handler behind the middleware observed.
type seenIdentity struct {
	called bool
	userID uuid.UUID
	authed bool
}

func authTestRouter(mw gin.HandlerFunc, seen *seenIdentity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/guarded", mw, func(c *gin.Context) {
		seen.called = true
		seen.userID, seen.authed = UserIDFromContext(c)
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestAuthMiddlewareRejectsAnonymous(t *testing.T) {
	var seen seenIdentity
	r := authTestRouter(AuthMiddleware(newTestManager()), &seen)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, seen.called, "handler must not run for anonymous requests")
}

func TestAuthMiddlewareRejectsBadTokens(t *testing.T) {
	manager := newTestManager()

	// A refresh token is not an access token.
	refresh, err := manager.GenerateRefreshToken(uuid.New().String())
	require.NoError(t, err)

	// A token signed with a different secret fails validation.
	other, err := jwt.NewManager("other-secret", 15*time.Minute, 72*time.Hour).
		GenerateAccessToken(uuid.New().String(), "leo")
	require.NoError(t, err)

	headers := map[string]string{
		"not bearer":     "Token abc",
		"missing token":  "Bearer",
		"garbage token":  "Bearer not-a-jwt",
		"refresh token":  "Bearer " + refresh,
		"foreign secret": "Bearer " + other,
	}
	for name, header := range headers {
		t.Run(name, func(t *testing.T) {
			var seen seenIdentity
			r := authTestRouter(AuthMiddleware(manager), &seen)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
			req.Header.Set("Authorization", header)
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.False(t, seen.called)
		})
	}
}

func TestAuthMiddlewarePassesIdentity(t *testing.T) {
	manager := newTestManager()
	userID := uuid.New()
	token, err := manager.GenerateAccessToken(userID.String(), "leo")
	require.NoError(t, err)

	var seen seenIdentity
	r := authTestRouter(AuthMiddleware(manager), &seen)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	require.True(t, seen.called)
	assert.True(t, seen.authed)
	assert.Equal(t, userID, seen.userID)
}

func TestOptionalAuthAllowsAnonymous(t *testing.T) {
	var seen seenIdentity
	r := authTestRouter(OptionalAuthMiddleware(newTestManager()), &seen)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	require.True(t, seen.called)
	assert.False(t, seen.authed)
	assert.Equal(t, uuid.Nil, seen.userID)
}

func TestOptionalAuthResolvesIdentity(t *testing.T) {
	manager := newTestManager()
	userID := uuid.New()
	token, err := manager.GenerateAccessToken(userID.String(), "leo")
	require.NoError(t, err)

	var seen seenIdentity
	r := authTestRouter(OptionalAuthMiddleware(manager), &seen)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	require.True(t, seen.called)
	assert.True(t, seen.authed)
	assert.Equal(t, userID, seen.userID)
}
