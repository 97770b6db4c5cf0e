package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"musicschool/internal/domain/user"
	"musicschool/internal/pkg/response"
)

// RequireRole ensures that the authenticated user has one of the given roles
func RequireRole(allowed ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		role := user.Role(roleVal.(string))
		for _, a := range allowed {
			if role == a {
				c.Next()
				return
			}
		}

		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
		c.Abort()
	}
}

// StaffOnly allows staff and above
func StaffOnly() gin.HandlerFunc {
	return RequireRole(user.RoleSuperAdmin, user.RoleAdmin, user.RoleStaff)
}

// AdminOnly allows admin and super_admin
func AdminOnly() gin.HandlerFunc {
	return RequireRole(user.RoleSuperAdmin, user.RoleAdmin)
}
