package middleware

import (
	"errors"
	"net/http"
	"strings"

	"storefront/services"

	"github.com/gin-gonic/gin"
)

// EmailContextKey is where the authenticated user's email lives in the gin
// context.
const EmailContextKey = "userEmail"

// Authenticate enforces the single bearer contract for every protected
// route: the Authorization header must carry "Bearer <token>". A missing or
// unprefixed header is 401; a token that fails verification is 403.
func Authenticate(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token not provided"})
			return
		}

		email, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(EmailContextKey, email)
		c.Next()
	}
}

// GetUserEmail pulls the authenticated email out of the gin context.
func GetUserEmail(c *gin.Context) (string, error) {
	if val, ok := c.Get(EmailContextKey); ok {
		if email, ok := val.(string); ok && email != "" {
			return email, nil
		}
	}
	return "", errors.New("user email not found in context")
}
