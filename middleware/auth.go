package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mango-abandoned/api-go/logger"
	"github.com/mango-abandoned/api-go/services"
	"github.com/mango-abandoned/api-go/utils"
)

// SessionMiddleware loads the session user, if any, into the request context.
func SessionMiddleware(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := authService.Current(c.Request.Context())
		if err != nil {
			logger.Error().Err(err).Msg("failed to read session")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Что-то пошло не так", "success": false})
			c.Abort()
			return
		}
		if user != nil {
			utils.SetUser(c, user)
		}

		c.Next()
	}
}

func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if utils.GetUser(c) == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Необходимо войти в систему", "success": false})
			c.Abort()
			return
		}

		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := utils.GetUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Необходимо войти в систему", "success": false})
			c.Abort()
			return
		}
		if !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Только администратор может модерировать", "success": false})
			c.Abort()
			return
		}

		c.Next()
	}
}
