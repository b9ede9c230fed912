package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	assert.Equal(t, fiber.StatusBadRequest, NewValidation("bad").Status())
	assert.Equal(t, fiber.StatusNotFound, NewNotFound("gone").Status())
	assert.Equal(t, fiber.StatusForbidden, NewAuthorization("no").Status())
	assert.Equal(t, fiber.StatusInternalServerError, NewPersistence("broke", errors.New("io")).Status())
}

func TestErrorTextHidesNothingInternally(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := NewPersistence("Failed to fetch stories", cause)

	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestIsKind(t *testing.T) {
	err := NewNotFound("Story not found")
	wrapped := fmt.Errorf("handling request: %w", err)

	assert.True(t, IsKind(err, KindNotFound))
	assert.True(t, IsKind(wrapped, KindNotFound))
	assert.False(t, IsKind(err, KindValidation))
	assert.False(t, IsKind(errors.New("plain"), KindNotFound))
}
