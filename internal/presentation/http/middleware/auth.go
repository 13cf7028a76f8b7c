package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tavolo/tavolo-api/internal/presentation/http/dto/response"
	"github.com/tavolo/tavolo-api/pkg/utils"
)

// AuthMiddleware creates a JWT authentication middleware
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_role", claims.Role)
		c.Set("pin_login", claims.PINLogin)

		c.Next()
	}
}

// RequireRole creates a middleware that requires one of the given roles
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("user_role")
		if !exists {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}

		userRole, ok := roleVal.(string)
		if !ok {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}

		for _, required := range roles {
			if userRole == required {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "Insufficient role privileges")
		c.Abort()
	}
}

// RequireFullLogin rejects tokens issued through PIN quick login. PIN
// sessions cover the waiter surface only; everything else needs a password
// login.
func RequireFullLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if pinLogin, exists := c.Get("pin_login"); exists {
			if isPIN, ok := pinLogin.(bool); ok && isPIN {
				response.Forbidden(c, "This action requires a password login")
				c.Abort()
				return
			}
		}
		c.Next()
	}
}
