package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
)

// Serialize runs one request at a time. Every write rewrites whole collections,
// so concurrent handlers would lose updates.
func Serialize() gin.HandlerFunc {
	var mu sync.Mutex
	return func(c *gin.Context) {
		mu.Lock()
		defer mu.Unlock()

		c.Next()
	}
}
