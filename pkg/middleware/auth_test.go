package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestAuthenticatorRoundTrip(t *testing.T) {
	auth := NewAuthenticator("test-secret", time.Hour)

	token, err := auth.GenerateToken(42)
	require.NoError(t, err)

	claims, err := auth.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, uint(42), claims.UserID)
}

func TestAuthenticatorRejectsBadTokens(t *testing.T) {
	auth := NewAuthenticator("test-secret", time.Hour)

	t.Run("garbage", func(t *testing.T) {
		_, err := auth.ParseToken("not-a-token")
		require.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewAuthenticator("other-secret", time.Hour)
		token, err := other.GenerateToken(42)
		require.NoError(t, err)

		_, err = auth.ParseToken(token)
		require.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewAuthenticator("test-secret", -time.Minute)
		token, err := expired.GenerateToken(42)
		require.NoError(t, err)

		_, err = auth.ParseToken(token)
		require.Error(t, err)
	})
}

func TestGinAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth := NewAuthenticator("test-secret", time.Hour)

	router := gin.New()
	router.GET("/whoami", GinAuthMiddleware(auth), func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	t.Run("valid token passes", func(t *testing.T) {
		token, err := auth.GenerateToken(7)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"user_id":7`)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
