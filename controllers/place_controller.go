package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mango-abandoned/api-go/services"
	"github.com/mango-abandoned/api-go/types"
)

type PlaceController struct {
	PlaceService *services.PlaceService
}

func NewPlaceController(placeService *services.PlaceService) *PlaceController {
	return &PlaceController{PlaceService: placeService}
}

func (pc *PlaceController) SubmitPlace(c *gin.Context) {
	var input types.SubmitPlaceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Заполните название и описание", "success": false})
		return
	}

	place, err := pc.PlaceService.Submit(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data:    place,
		Message: "Заброшка отправлена на модерацию",
	})
}

func (pc *PlaceController) GetPlace(c *gin.Context) {
	place, err := pc.PlaceService.GetVisible(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    place,
		Meta: gin.H{
			"averageRating":   place.AverageRating(),
			"approvedRatings": place.ApprovedRatings(),
			"securityLabel":   types.SECURITY_LEVELS[place.SecurityLevel],
		},
	})
}

// GetPlaceOptions exposes the security level labels and suggested tags for the submit form.
func (pc *PlaceController) GetPlaceOptions(c *gin.Context) {
	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: gin.H{
			"securityLevels": types.SECURITY_LEVELS,
			"tags":           types.COMMON_TAGS,
			"minImages":      types.MIN_PLACE_IMAGES,
			"maxImages":      types.MAX_PLACE_IMAGES,
			"maxTags":        types.MAX_PLACE_TAGS,
		},
	})
}

func (pc *PlaceController) RatePlace(c *gin.Context) {
	var input types.RateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	rating, err := pc.PlaceService.Rate(c.Request.Context(), c.Param("id"), input.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: rating})
}

func (pc *PlaceController) GetPendingPlaces(c *gin.Context) {
	places, err := pc.PlaceService.Pending(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: places})
}

func (pc *PlaceController) ApprovePlace(c *gin.Context) {
	place, err := pc.PlaceService.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: place})
}

func (pc *PlaceController) ApproveRating(c *gin.Context) {
	rating, err := pc.PlaceService.ApproveRating(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: rating})
}
