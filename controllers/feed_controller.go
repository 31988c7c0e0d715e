package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mango-abandoned/api-go/services"
	"github.com/mango-abandoned/api-go/types"
	"github.com/mango-abandoned/api-go/utils"
)

type FeedController struct {
	PlaceService *services.PlaceService
}

func NewFeedController(placeService *services.PlaceService) *FeedController {
	return &FeedController{PlaceService: placeService}
}

// GetFeed lists approved places. Query params: q (free text), tag, page, pageSize.
func (fc *FeedController) GetFeed(c *gin.Context) {
	var query types.FeedQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	places, err := fc.PlaceService.Feed(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	page, pageSize := paginationParams(c, 20)
	total := len(places)
	start, end := utils.PageBounds(page, pageSize, total)

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    places[start:end],
		Pagination: &PaginationMeta{
			CurrentPage: page,
			PageSize:    pageSize,
			TotalItems:  int64(total),
			TotalPages:  utils.TotalPages(total, pageSize),
		},
	})
}
