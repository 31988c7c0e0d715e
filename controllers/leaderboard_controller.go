package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mango-abandoned/api-go/services"
	"github.com/mango-abandoned/api-go/utils"
)

type LeaderboardController struct {
	LeaderboardService *services.LeaderboardService
}

type LeaderboardQuery struct {
	Page     int `form:"page,default=1" binding:"min=1"`
	PageSize int `form:"pageSize,default=10" binding:"min=1,max=50"`
}

func NewLeaderboardController(leaderboardService *services.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{LeaderboardService: leaderboardService}
}

func (lc *LeaderboardController) GetLeaderboard(c *gin.Context) {
	var query LeaderboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var userID string
	if user := utils.GetUser(c); user != nil {
		userID = user.ID
	}

	page, err := lc.LeaderboardService.Page(c.Request.Context(), userID, query.Page, query.PageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"leaderboard": page.Entries,
		"user_rank":   page.UserRank,
		"pagination": gin.H{
			"current_page": page.Page,
			"page_size":    page.PageSize,
			"total_items":  page.TotalItems,
			"total_pages":  utils.TotalPages(page.TotalItems, page.PageSize),
		},
	})
}
