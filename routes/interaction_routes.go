package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mango-abandoned/api-go/controllers"
)

func SetupInteractionRoutes(public, protected *gin.RouterGroup, interactionController *controllers.InteractionController) {
	// Place reactions
	places := protected.Group("/places")
	{
		places.POST("/:id/like", interactionController.LikePlace)
		places.POST("/:id/dislike", interactionController.DislikePlace)
	}

	// User interactions
	protected.POST("/users/:id/follow", interactionController.FollowUser)

	users := public.Group("/users")
	{
		users.GET("/:id/followers", interactionController.GetUserFollowers)
		users.GET("/:id/following", interactionController.GetUserFollowing)
	}
}
