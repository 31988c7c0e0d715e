package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mango-abandoned/api-go/repositories"
)

type ValidationController struct {
	UserRepo *repositories.UserRepository
}

func NewValidationController(userRepo *repositories.UserRepository) *ValidationController {
	return &ValidationController{UserRepo: userRepo}
}

func (vc *ValidationController) ValidateEmail(c *gin.Context) {
	email := c.Param("email")

	exists, err := vc.UserRepo.EmailExists(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check email"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}
