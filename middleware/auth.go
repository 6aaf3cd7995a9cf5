package middleware

import (
	"net/http"
	"strings"

	"coachly/utils"

	"github.com/gin-gonic/gin"
)

// FirebaseAuthMiddleware verifies the Firebase ID token on the
// Authorization header and stores the caller's uid and email in the
// request context.
func FirebaseAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		idToken := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.GetAuthClient().VerifyIDToken(c.Request.Context(), idToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("uid", token.UID)
		if email, ok := token.Claims["email"].(string); ok {
			c.Set("email", email)
		}
		if admin, ok := token.Claims["admin"].(bool); ok && admin {
			c.Set("isAdmin", true)
		}
		c.Next()
	}
}
