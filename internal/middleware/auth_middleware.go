package middleware

import (
	"net/http"
	"strings"

	"repair_shop_backend/internal/permissions"
	"repair_shop_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware creates a Gin middleware for JWT authentication.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format. Use Bearer <token>"})
			c.Abort()
			return
		}

		tokenString := parts[1]
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		// Expose the session identity to downstream handlers.
		c.Set("staffID", claims.StaffID)
		c.Set("staffName", claims.Name)
		c.Set("staffRole", claims.Role)

		c.Next()
	}
}

// RequirePermission creates a Gin middleware that consults the shared
// role-permission table before letting the request through.
func RequirePermission(capability string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("staffRole")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Staff role not found in token claims. Ensure AuthMiddleware runs first."})
			c.Abort()
			return
		}

		roleStr, ok := role.(string)
		if !ok || !permissions.HasPermission(roleStr, capability) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource. Required: " + capability})
			c.Abort()
			return
		}

		c.Next()
	}
}
