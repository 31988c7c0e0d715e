package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mango-abandoned/api-go/controllers"
	"github.com/mango-abandoned/api-go/middleware"
	"github.com/mango-abandoned/api-go/repositories"
	"github.com/mango-abandoned/api-go/services"
)

func SetupRoutes(r *gin.Engine, svc *services.Services, repos *repositories.Repositories) {
	// Initialize controllers
	authController := controllers.NewAuthController(svc.AuthService)
	placeController := controllers.NewPlaceController(svc.PlaceService)
	feedController := controllers.NewFeedController(svc.PlaceService)
	interactionController := controllers.NewInteractionController(svc.PlaceService, svc.FollowService, repos.UserRepository)
	leaderboardController := controllers.NewLeaderboardController(svc.LeaderboardService)
	userController := controllers.NewUserController(svc, repos.UserRepository)
	validationController := controllers.NewValidationController(repos.UserRepository)

	api := r.Group("/api")
	api.Use(middleware.Serialize(), middleware.SessionMiddleware(svc.AuthService))

	// Public routes
	public := api.Group("")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
		public.GET("/session", authController.GetSession)
		public.GET("/leaderboard", leaderboardController.GetLeaderboard)

		SetupFeedRoutes(public, feedController, placeController)
		SetupValidationRoutes(public, validationController)
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.RequireSession())
	{
		protected.POST("/logout", authController.Logout)

		SetupPlaceRoutes(protected, placeController)
	}

	SetupInteractionRoutes(public, protected, interactionController)
	SetupUserRoutes(public, protected, userController)

	// Moderation routes
	admin := api.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/places/pending", placeController.GetPendingPlaces)
		admin.POST("/places/:id/approve", placeController.ApprovePlace)
		admin.POST("/ratings/:id/approve", placeController.ApproveRating)
	}
}
