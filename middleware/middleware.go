package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kelias-gh/CRM/domain"
)

// role checking middleware
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists || role != domain.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Admins only",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// StaffOnly admits teachers and admins; students can read but not mutate.
func StaffOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists || (role != domain.RoleTeacher && role != domain.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Teachers and admins only",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
