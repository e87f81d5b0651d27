package middleware

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/gin-gonic/gin"
)

// RequireRole is a middleware that checks if the caller has the required role.
// It must run after OAuth2Auth.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID, exists := c.Get(ContextClientID)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewErrorResponse("Client not authenticated"))
			return
		}

		role, exists := c.Get(ContextRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, models.NewErrorResponse("Role not found in token"))
			return
		}

		userRole, ok := role.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, models.NewErrorResponse("Invalid role format"))
			return
		}

		if userRole != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":         "Insufficient permissions",
				"required_role": requiredRole,
				"user_role":     userRole,
				"client_id":     clientID,
			})
			return
		}

		c.Next()
	}
}
