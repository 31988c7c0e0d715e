package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mango-abandoned/api-go/repositories"
	"github.com/mango-abandoned/api-go/services"
	"github.com/mango-abandoned/api-go/types"
	"github.com/mango-abandoned/api-go/utils"
)

type UserController struct {
	UserRepo            *repositories.UserRepository
	NotificationService *services.NotificationService
	FollowService       *services.FollowService
	GamificationService *services.GamificationService
}

func NewUserController(svc *services.Services, userRepo *repositories.UserRepository) *UserController {
	return &UserController{
		UserRepo:            userRepo,
		NotificationService: svc.NotificationService,
		FollowService:       svc.FollowService,
		GamificationService: svc.GamificationService,
	}
}

func (uc *UserController) GetUserProfile(c *gin.Context) {
	ctx := c.Request.Context()
	currentUser := utils.GetUser(c)

	targetUser, err := uc.UserRepo.GetByID(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	stats, err := uc.GamificationService.Stats(ctx, targetUser.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	followers, err := uc.FollowService.Followers(ctx, targetUser.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	following, err := uc.FollowService.Following(ctx, targetUser.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	var isFollowing, isOwnProfile bool
	if currentUser != nil {
		isOwnProfile = currentUser.ID == targetUser.ID
		if !isOwnProfile {
			isFollowing, err = uc.FollowService.IsFollowing(ctx, currentUser.ID, targetUser.ID)
			if err != nil {
				respondError(c, err)
				return
			}
		}
	}

	profile, err := toUserResponse(targetUser)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    profile,
		Meta: gin.H{
			"approvedPlaces":  stats.ApprovedPlaces,
			"totalLikes":      stats.TotalLikes,
			"approvedRatings": stats.ApprovedRatings,
			"followersCount":  len(followers),
			"followingCount":  len(following),
			"isFollowing":     isFollowing,
			"isOwnProfile":    isOwnProfile,
		},
	})
}

func (uc *UserController) GetNotifications(c *gin.Context) {
	user := utils.GetUser(c)

	notifications, err := uc.NotificationService.ListFor(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	unread, err := uc.NotificationService.UnreadCount(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    notifications,
		Meta:    gin.H{"unread": unread},
	})
}

func (uc *UserController) MarkNotificationRead(c *gin.Context) {
	user := utils.GetUser(c)

	if err := uc.NotificationService.MarkReadFor(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, StandardResponse{Success: true})
}

// GetBadges returns the badge catalog, with the caller's earned ids when logged in.
func (uc *UserController) GetBadges(c *gin.Context) {
	earned := []string{}
	if user := utils.GetUser(c); user != nil {
		for _, b := range user.Badges {
			earned = append(earned, b.ID)
		}
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    types.GetBadges(),
		Meta:    gin.H{"earned": earned},
	})
}
