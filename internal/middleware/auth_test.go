package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorpme/gestor_backend/internal/middleware"
	"github.com/gestorpme/gestor_backend/internal/utils"
)

const testSecret = "test-secret"

func protectedRouter(t *testing.T) (*gin.Engine, *string, *bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var gotUserID string
	var found bool
	r := gin.New()
	r.Use(middleware.AuthMiddleware(testSecret))
	r.GET("/protected", func(c *gin.Context) {
		gotUserID, found = middleware.GetUserIDFromContext(c)
		c.Status(http.StatusOK)
	})
	return r, &gotUserID, &found
}

func TestAuthMiddleware_ExposesUserID(t *testing.T) {
	r, gotUserID, found := protectedRouter(t)

	token, err := utils.GenerateJWT("user-42", testSecret, time.Hour, "gestor-test")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *found)
	assert.Equal(t, "user-42", *gotUserID)
}

func TestAuthMiddleware_MissingHeaderIs401(t *testing.T) {
	r, _, found := protectedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *found)
}

func TestAuthMiddleware_WrongSecretIs401(t *testing.T) {
	r, _, _ := protectedRouter(t)

	token, err := utils.GenerateJWT("user-42", "another-secret", time.Hour, "gestor-test")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
