// middlewares/session_middleware.go
package middlewares

import (
	"net/http"

	"backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SessionAuth guards every meal route. The sessionId cookie is matched
// verbatim against users.session_id; a missing or unknown cookie is a 401
// with no further detail.
func SessionAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie("sessionId")
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var user models.User
		if err := db.WithContext(c.Request.Context()).
			Where("session_id = ?", sessionID).
			First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set("userID", user.ID)
		c.Next()
	}
}
