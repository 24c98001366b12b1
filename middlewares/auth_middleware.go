package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chunponglai/tricks-planner/models"
	"github.com/chunponglai/tricks-planner/utils"
)

const currentUserKey = "currentUser"

// AuthMiddleware is the single authorization gate. It verifies the
// bearer token, resolves the user named by its subject claim with one
// lookup (no caching), and hangs the user on the context. Every
// protected handler scopes its queries by that user's id.
func AuthMiddleware(tokens *utils.TokenMaker, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		email, err := tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user resolved by AuthMiddleware. Only valid
// inside handlers behind it.
func CurrentUser(c *gin.Context) models.User {
	return c.MustGet(currentUserKey).(models.User)
}
