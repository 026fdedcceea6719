package middleware

import (
	"net/http"

	"grandhaven/models"

	"github.com/gin-gonic/gin"
)

// RequireRoles rejects the request unless the authenticated principal holds
// one of the allowed roles. The check runs at the boundary so the core
// services can assume an authorized caller.
func RequireRoles(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := CurrentRole(c)
		for _, a := range allowed {
			if role == a {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role for this operation"})
	}
}

// RequireStaff is shorthand for the staff/manager/admin set.
func RequireStaff() gin.HandlerFunc {
	return RequireRoles(models.StaffRoles()...)
}
