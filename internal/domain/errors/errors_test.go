package errors

import (
	"net/http"
	"testing"

	"beerhaus/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := errors.Wrap(ErrValidationFailed.WithDetails("title is required"), "create announcement")

	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.NotErrorIs(t, err, ErrUserNotFound)

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "title is required", appErr.Details())
}
