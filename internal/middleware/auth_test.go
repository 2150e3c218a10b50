package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pixperk/pocketmind-server/internal/config"
	"github.com/pixperk/pocketmind-server/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(cfg *config.Config, handlerRan *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(cfg), func(c *gin.Context) {
		*handlerRan = true
		c.JSON(http.StatusOK, gin.H{"user_id": UserID(c)})
	})
	return router
}

func testConfig() *config.Config {
	return &config.Config{JWT: config.JWTConfig{Secret: "test-secret", ExpireSeconds: 3600}}
}

func TestAuthMiddleware(t *testing.T) {
	cfg := testConfig()

	t.Run("valid token", func(t *testing.T) {
		var handlerRan bool
		router := testRouter(cfg, &handlerRan)

		token, err := utils.GenerateToken("user-1", cfg.JWT.Secret, cfg.JWT.ExpireSeconds)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, handlerRan)
		assert.Contains(t, rr.Body.String(), "user-1")
	})

	t.Run("missing header", func(t *testing.T) {
		var handlerRan bool
		router := testRouter(cfg, &handlerRan)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, handlerRan)
	})

	t.Run("non-bearer scheme", func(t *testing.T) {
		var handlerRan bool
		router := testRouter(cfg, &handlerRan)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic abc123")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, handlerRan)
	})

	t.Run("empty token segment", func(t *testing.T) {
		var handlerRan bool
		router := testRouter(cfg, &handlerRan)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer ")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, handlerRan)
	})

	t.Run("expired token", func(t *testing.T) {
		var handlerRan bool
		router := testRouter(cfg, &handlerRan)

		token, err := utils.GenerateToken("user-1", cfg.JWT.Secret, -60)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, handlerRan)
	})

	t.Run("token signed with wrong secret", func(t *testing.T) {
		var handlerRan bool
		router := testRouter(cfg, &handlerRan)

		token, err := utils.GenerateToken("user-1", "another-secret", 3600)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, handlerRan)
	})
}
