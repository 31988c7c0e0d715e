package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mango-abandoned/api-go/controllers"
)

func SetupUserRoutes(public, protected *gin.RouterGroup, userController *controllers.UserController) {
	public.GET("/users/:id", userController.GetUserProfile)
	public.GET("/badges", userController.GetBadges)

	notifications := protected.Group("/notifications")
	{
		notifications.GET("", userController.GetNotifications)
		notifications.POST("/:id/read", userController.MarkNotificationRead)
	}
}
