package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/middleware"
	"storefront/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(tokens *services.TokenService) *gin.Engine {
	r := gin.New()
	r.GET("/protected", middleware.Authenticate(tokens), func(c *gin.Context) {
		email, err := middleware.GetUserEmail(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": email})
	})
	return r
}

func TestAuthenticate_MissingOrUnprefixedHeaderIs401(t *testing.T) {
	tokens := services.NewTokenService("test-secret", time.Hour)
	r := setupRouter(tokens)

	token, err := tokens.Issue("shopper@example.com")
	require.NoError(t, err)

	// The contract is "Bearer <token>", nothing else. A raw token without
	// the scheme prefix is rejected before verification.
	for _, header := range []string{"", token, "Token " + token} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthenticate_InvalidOrExpiredTokenIs403(t *testing.T) {
	tokens := services.NewTokenService("test-secret", time.Hour)
	r := setupRouter(tokens)

	expired, err := services.NewTokenService("test-secret", -time.Minute).Issue("shopper@example.com")
	require.NoError(t, err)
	foreign, err := services.NewTokenService("other-secret", time.Hour).Issue("shopper@example.com")
	require.NoError(t, err)

	for _, token := range []string{"garbage", expired, foreign} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	}
}

func TestAuthenticate_ValidTokenPassesEmailThrough(t *testing.T) {
	tokens := services.NewTokenService("test-secret", time.Hour)
	r := setupRouter(tokens)

	token, err := tokens.Issue("shopper@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "shopper@example.com")
}
