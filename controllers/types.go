package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"

	"github.com/mango-abandoned/api-go/apperrors"
	"github.com/mango-abandoned/api-go/logger"
	"github.com/mango-abandoned/api-go/models"
)

type StandardResponse struct {
	Success    bool            `json:"success"`
	Data       interface{}     `json:"data,omitempty"`
	Meta       interface{}     `json:"meta,omitempty"`
	Pagination *PaginationMeta `json:"pagination,omitempty"`
	Message    string          `json:"message,omitempty"`
}

type PaginationMeta struct {
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
}

// UserResponse is the public view of an account; it omits the email.
type UserResponse struct {
	ID        string         `json:"id"`
	Nickname  string         `json:"nickname"`
	Avatar    string         `json:"avatar"`
	Level     int            `json:"level"`
	XP        int            `json:"xp"`
	Badges    []models.Badge `json:"badges"`
	CreatedAt string         `json:"createdAt"`
	IsAdmin   bool           `json:"isAdmin,omitempty"`
}

// SessionResponse is the logged in user's own view, email included.
type SessionResponse struct {
	UserResponse
	Email string `json:"email"`
}

func toUserResponse(user *models.User) (UserResponse, error) {
	var resp UserResponse
	if err := copier.Copy(&resp, user); err != nil {
		return UserResponse{}, errors.Wrap(err, "map user response")
	}
	if resp.Badges == nil {
		resp.Badges = []models.Badge{}
	}
	return resp, nil
}

func toSessionResponse(user *models.User) (SessionResponse, error) {
	resp, err := toUserResponse(user)
	if err != nil {
		return SessionResponse{}, err
	}
	return SessionResponse{UserResponse: resp, Email: user.Email}, nil
}

// respondError maps domain errors onto status codes. Unknown errors are logged and hidden.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		status = http.StatusBadRequest
	case apperrors.Is(err, apperrors.ErrInvalidCredentials, apperrors.ErrUnauthorized):
		status = http.StatusUnauthorized
	case apperrors.Is(err, apperrors.ErrPermissionDenied):
		status = http.StatusForbidden
	case apperrors.Is(err, apperrors.ErrResourceNotFound, apperrors.ErrUserNotFound, apperrors.ErrPlaceNotFound, apperrors.ErrRatingNotFound):
		status = http.StatusNotFound
	case apperrors.Is(err, apperrors.ErrEmailAlreadyExists, apperrors.ErrResourceAlreadyExists):
		status = http.StatusConflict
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		message = "Что-то пошло не так"
	}
	c.JSON(status, gin.H{"success": false, "error": message})
}
