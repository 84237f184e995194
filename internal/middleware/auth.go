package middleware

import (
	"net/http"
	"strings"

	"janamat/internal/models"
	"janamat/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const CheckUserKey = "user"

// LoadUser resolves the logged-in user from the session cookie, or from
// a Bearer token for non-browser clients, and sets it on the context.
func LoadUser(conn *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var userID uint

		session := sessions.Default(c)
		if sid := session.Get("user_id"); sid != nil {
			if id, ok := sid.(uint); ok {
				userID = id
			}
		}

		if userID == 0 {
			if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
				if id, err := utils.ParseJWTToken(strings.TrimPrefix(auth, "Bearer "), jwtSecret); err == nil {
					userID = id
				}
			}
		}

		if userID != 0 {
			var user models.User
			if result := conn.First(&user, userID); result.Error == nil {
				c.Set(CheckUserKey, &user)
			}
		}

		c.Next()
	}
}

// AuthRequired ensures a user is logged in
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CheckUserKey); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		c.Next()
	}
}

// AdminRequired gates the administrative seeding endpoints.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, exists := c.Get(CheckUserKey)
		if !exists || user.(*models.User).Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin required"})
			return
		}
		c.Next()
	}
}
