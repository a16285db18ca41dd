package rmiddleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rossim-dev/scoutbase/internal/middleware"
	"github.com/rossim-dev/scoutbase/internal/user"
)

// RoleMiddleware allows the request through only when the acting user's
// stored role matches one of the required roles. The database is the source
// of truth, not the role claim in the token.
func RoleMiddleware(db *gorm.DB, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := middleware.GetUserIDFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
			return
		}

		var u user.User
		if err := db.First(&u, userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		for _, required := range requiredRoles {
			if strings.EqualFold(u.Role, required) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "You don't have permission to access this resource",
		})
	}
}

// CoachOrScoutMiddleware gates routes reserved for talent scouts and coaches.
func CoachOrScoutMiddleware(db *gorm.DB) gin.HandlerFunc {
	return RoleMiddleware(db, user.RoleCoach, user.RoleScout)
}
