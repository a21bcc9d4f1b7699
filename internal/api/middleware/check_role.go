package middleware

import (
	"careerbridge/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// CheckRoles passes when the caller holds at least one of the required roles.
func CheckRoles(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles := c.GetStringSlice("roles")

		hasPermission := false
		for _, required := range requiredRoles {
			for _, userRole := range roles {
				if required == userRole {
					hasPermission = true
					break
				}
			}
			if hasPermission {
				break
			}
		}

		if !hasPermission {
			response.Fail(c, response.Forbidden, "insufficient role for this resource")
			c.Abort()
			return
		}

		c.Next()
	}
}
