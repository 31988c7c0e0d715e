package apperrors

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCustomError(t *testing.T) {
	t.Run("message wins over wrapped error", func(t *testing.T) {
		err := NewValidationError("Добавьте минимум 3 изображения")
		assert.Equal(t, "Добавьте минимум 3 изображения", err.Error())
		assert.ErrorIs(t, err, ErrValidationFailed)
	})

	t.Run("falls back to wrapped error text", func(t *testing.T) {
		err := &CustomError{Err: ErrBadRequest}
		assert.Equal(t, "bad request", err.Error())
	})

	t.Run("survives pkg/errors wrapping", func(t *testing.T) {
		err := errors.Wrap(NewForbiddenError("admins only"), "approve place")
		assert.True(t, Is(err, ErrPermissionDenied))
		assert.Contains(t, err.Error(), "admins only")
	})
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("lookup: %w", ErrUserNotFound)
	assert.True(t, Is(err, ErrPlaceNotFound, ErrUserNotFound))
	assert.False(t, Is(err, ErrPlaceNotFound, ErrRatingNotFound))
}
