package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mango-abandoned/api-go/services"
	"github.com/mango-abandoned/api-go/types"
)

type AuthController struct {
	AuthService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

func (ac *AuthController) Register(c *gin.Context) {
	var input types.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Заполните все поля", "success": false})
		return
	}

	user, err := ac.AuthService.Register(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := toSessionResponse(user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data:    resp,
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input types.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Заполните все поля", "success": false})
		return
	}

	user, err := ac.AuthService.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := toSessionResponse(user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    resp,
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.AuthService.Logout(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Logged out"})
}

// GetSession returns the logged in user, or null data when nobody is logged in.
func (ac *AuthController) GetSession(c *gin.Context) {
	user, err := ac.AuthService.Current(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": nil})
		return
	}
	resp, err := toSessionResponse(user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: resp})
}
