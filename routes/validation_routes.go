package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mango-abandoned/api-go/controllers"
)

func SetupValidationRoutes(public *gin.RouterGroup, validationController *controllers.ValidationController) {
	validation := public.Group("/validation")
	{
		validation.GET("/email/:email", validationController.ValidateEmail)
	}
}
