package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mango-abandoned/api-go/controllers"
)

func SetupPlaceRoutes(protected *gin.RouterGroup, placeController *controllers.PlaceController) {
	places := protected.Group("/places")
	{
		places.POST("", placeController.SubmitPlace)
		places.POST("/:id/ratings", placeController.RatePlace)
	}
}
