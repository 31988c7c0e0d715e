package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mango-abandoned/api-go/controllers"
)

func SetupFeedRoutes(public *gin.RouterGroup, feedController *controllers.FeedController, placeController *controllers.PlaceController) {
	places := public.Group("/places")
	{
		places.GET("", feedController.GetFeed)
		places.GET("/options", placeController.GetPlaceOptions)
		places.GET("/:id", placeController.GetPlace)
	}
}
