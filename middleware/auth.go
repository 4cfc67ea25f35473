package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/floranflowers/floran-api/services"
)

// RequireSession is a middleware that resolves the Bearer session token on
// account-scoped routes. The resolved email is stored in the Gin context.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "MISSING_TOKEN",
					"message": "Authorization header with Bearer token is required",
				},
			})
			return
		}

		store := services.GetSessionStore()
		if store == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "SESSION_STORE_UNAVAILABLE",
					"message": "Session store is not configured",
				},
			})
			return
		}

		email, err := store.Lookup(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_TOKEN",
					"message": "Session token is invalid or expired",
				},
			})
			return
		}

		c.Set("user_email", email)
		c.Set("session_token", token)
		c.Next()
	}
}

// GetUserEmail extracts the session user's email from the Gin context
func GetUserEmail(c *gin.Context) (string, error) {
	email, exists := c.Get("user_email")
	if !exists {
		return "", &AuthError{Code: "MISSING_USER_EMAIL", Message: "User email not found in context"}
	}

	emailStr, ok := email.(string)
	if !ok {
		return "", &AuthError{Code: "INVALID_USER_EMAIL", Message: "User email is not a string"}
	}

	return emailStr, nil
}

// GetSessionToken extracts the raw session token from the Gin context
func GetSessionToken(c *gin.Context) (string, error) {
	token, exists := c.Get("session_token")
	if !exists {
		return "", &AuthError{Code: "MISSING_TOKEN", Message: "Session token not found in context"}
	}

	tokenStr, ok := token.(string)
	if !ok {
		return "", &AuthError{Code: "INVALID_TOKEN", Message: "Session token is not a string"}
	}

	return tokenStr, nil
}

// AuthError represents an authentication error
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
