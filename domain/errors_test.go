package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFound("Recipe", 999)

	assert.Equal(t, "Recipe with ID 999 not found", err.Error())
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrPersistence)
}

func TestNotFoundNamedError(t *testing.T) {
	err := NewNotFoundNamed("User", "username", "ghost")

	assert.Equal(t, "User with username ghost not found", err.Error())
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBadFilterError(t *testing.T) {
	err := NewBadFilter("type", "not-a-type")

	assert.Equal(t, "Invalid type: not-a-type", err.Error())
	assert.Equal(t, http.StatusBadRequest, StatusCode(err))
	assert.ErrorIs(t, err, ErrBadFilter)
}

func TestWrapPersistenceKeepsTypedErrors(t *testing.T) {
	notFound := NewNotFound("Ingredient", 4)

	wrapped := WrapPersistence("update ingredient", fmt.Errorf("tx: %w", notFound))
	assert.ErrorIs(t, wrapped, ErrNotFound)
	assert.Equal(t, http.StatusNotFound, StatusCode(wrapped))
}

func TestWrapPersistenceWrapsStorageErrors(t *testing.T) {
	cause := errors.New("connection reset")

	wrapped := WrapPersistence("create recipe", cause)

	var typed *Error
	require.ErrorAs(t, wrapped, &typed)
	assert.Equal(t, "Failed to create recipe", typed.Message)
	assert.ErrorIs(t, wrapped, ErrPersistence)
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, http.StatusInternalServerError, StatusCode(wrapped))
}

func TestWrapPersistenceNil(t *testing.T) {
	assert.NoError(t, WrapPersistence("noop", nil))
}

func TestStatusCodeUntyped(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("boom")))
}
