package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/taskmanager-simple/services"
)

// AuthMiddleware authenticates requests with a JWT, taken from the
// Authorization header (Bearer scheme) or the access_token cookie set at
// login. On success the verified user id lands in the gin context; handlers
// never see the token itself.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authentication required",
			})
			c.Abort()
			return
		}

		claims, err := services.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		// Make the verified identity available to handlers
		c.Set("userId", claims.UserID)
		c.Set("email", claims.Email)

		c.Next()
	}
}

// extractToken looks for the token in the Authorization header first, then
// falls back to the login cookie
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	cookie, err := c.Cookie("access_token")
	if err == nil {
		return cookie
	}

	return ""
}
