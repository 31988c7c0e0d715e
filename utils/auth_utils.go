package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/mango-abandoned/api-go/models"
)

type contextKey string

const UserContextKey contextKey = "user"

// SetUser stores the session user on the request context.
func SetUser(c *gin.Context, user *models.User) {
	c.Set(string(UserContextKey), user)
}

func GetUser(c *gin.Context) *models.User {
	user, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if u, ok := user.(*models.User); ok {
		return u
	}
	return nil
}
