package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetAppError(t *testing.T) {
	notFound := NewNotFoundError("Customer")
	assert.Equal(t, http.StatusNotFound, GetAppError(notFound).Code)
	assert.Equal(t, "Customer not found", GetAppError(notFound).Message)

	// wrapping preserves the status code
	wrapped := fmt.Errorf("lookup: %w", NewBadRequestError("Litres required"))
	assert.Equal(t, http.StatusBadRequest, GetAppError(wrapped).Code)

	// unexpected errors surface as 500
	plain := errors.New("disk full")
	assert.Equal(t, http.StatusInternalServerError, GetAppError(plain).Code)
	assert.Equal(t, "disk full", GetAppError(plain).Message)
}

func TestIsAppError(t *testing.T) {
	assert.True(t, IsAppError(ErrInvalidCredentials))
	assert.True(t, IsAppError(fmt.Errorf("login: %w", ErrForbidden)))
	assert.False(t, IsAppError(errors.New("disk full")))
}
