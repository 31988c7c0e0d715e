package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mango-abandoned/api-go/models"
	"github.com/mango-abandoned/api-go/repositories"
	"github.com/mango-abandoned/api-go/services"
	"github.com/mango-abandoned/api-go/utils"
)

type InteractionController struct {
	PlaceService  *services.PlaceService
	FollowService *services.FollowService
	UserRepo      *repositories.UserRepository
}

func NewInteractionController(placeService *services.PlaceService, followService *services.FollowService, userRepo *repositories.UserRepository) *InteractionController {
	return &InteractionController{
		PlaceService:  placeService,
		FollowService: followService,
		UserRepo:      userRepo,
	}
}

// LikePlace toggles the caller's like on a place.
func (ic *InteractionController) LikePlace(c *gin.Context) {
	place, liked, err := ic.PlaceService.ToggleLike(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"liked":    liked,
		"likes":    len(place.Likes),
		"dislikes": len(place.Dislikes),
	})
}

// DislikePlace toggles the caller's dislike on a place.
func (ic *InteractionController) DislikePlace(c *gin.Context) {
	place, disliked, err := ic.PlaceService.ToggleDislike(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"disliked": disliked,
		"likes":    len(place.Likes),
		"dislikes": len(place.Dislikes),
	})
}

// FollowUser toggles follow status for a user
func (ic *InteractionController) FollowUser(c *gin.Context) {
	follower := utils.GetUser(c)
	if follower == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Необходимо войти в систему", "success": false})
		return
	}

	target, err := ic.UserRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	following, err := ic.FollowService.Toggle(c.Request.Context(), follower.ID, target.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Successfully unfollowed user"
	if following {
		message = "Successfully followed user"
	}
	c.JSON(http.StatusOK, gin.H{
		"following": following,
		"message":   message,
	})
}

type followEntry struct {
	UserID     string `json:"userId"`
	Nickname   string `json:"nickname"`
	Avatar     string `json:"avatar"`
	FollowedAt string `json:"followedAt"`
}

// GetUserFollowers returns paginated list of user's followers
func (ic *InteractionController) GetUserFollowers(c *gin.Context) {
	follows, err := ic.FollowService.Followers(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	ic.respondFollows(c, "followers", follows, func(f models.Follow) string { return f.FollowerID })
}

// GetUserFollowing returns paginated list of users that the specified user is following
func (ic *InteractionController) GetUserFollowing(c *gin.Context) {
	follows, err := ic.FollowService.Following(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	ic.respondFollows(c, "following", follows, func(f models.Follow) string { return f.FollowingID })
}

func (ic *InteractionController) respondFollows(c *gin.Context, field string, follows []models.Follow, other func(models.Follow) string) {
	page, pageSize := paginationParams(c, 20)
	total := len(follows)
	start, end := utils.PageBounds(page, pageSize, total)

	entries := []followEntry{}
	for i := start; i < end; i++ {
		entry := followEntry{UserID: other(follows[i]), FollowedAt: follows[i].CreatedAt}
		if user, err := ic.UserRepo.GetByID(c.Request.Context(), entry.UserID); err == nil {
			entry.Nickname = user.Nickname
			entry.Avatar = user.Avatar
		}
		entries = append(entries, entry)
	}

	c.JSON(http.StatusOK, gin.H{
		field: entries,
		"pagination": gin.H{
			"currentPage": page,
			"pageSize":    pageSize,
			"totalItems":  total,
			"totalPages":  utils.TotalPages(total, pageSize),
		},
	})
}

// paginationParams reads page and pageSize, falling back to 1 and defaultSize.
func paginationParams(c *gin.Context, defaultSize int) (int, int) {
	page := convertToInt(c.DefaultQuery("page", "1"))
	pageSize := convertToInt(c.DefaultQuery("pageSize", fmt.Sprint(defaultSize)))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultSize
	}
	return page, pageSize
}

// Helper function to convert string to int
func convertToInt(str string) int {
	val := 0
	fmt.Sscanf(str, "%d", &val)
	return val
}
