package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{name: "auth", err: NewAuthError("Access token required"), want: http.StatusUnauthorized},
		{name: "forbidden", err: NewForbiddenError("Invalid or expired token"), want: http.StatusForbidden},
		{name: "not found", err: NewNotFoundError("Post not found"), want: http.StatusNotFound},
		{name: "validation", err: NewValidationError("Validation failed", nil), want: http.StatusBadRequest},
		{name: "bad request", err: NewBadRequestError("Invalid request body", nil), want: http.StatusBadRequest},
		{name: "conflict", err: NewConflictError("User already exists"), want: http.StatusConflict},
		{name: "internal", err: NewInternalError("boom", nil), want: http.StatusInternalServerError},
		{name: "database", err: NewDatabaseError("query failed", nil), want: http.StatusInternalServerError},
		{name: "config", err: NewConfigError("bad config", nil), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.StatusCode())
		})
	}
}

func TestError_IncludesUnderlying(t *testing.T) {
	underlying := errors.New("connection reset")
	err := NewDatabaseError("query failed", underlying)

	assert.Equal(t, "query failed: connection reset", err.Error())
	assert.ErrorIs(t, err, underlying)
}

func TestError_WithoutUnderlying(t *testing.T) {
	err := NewNotFoundError("Post not found")
	assert.Equal(t, "Post not found", err.Error())
}

func TestFromError(t *testing.T) {
	t.Run("direct", func(t *testing.T) {
		appErr, ok := FromError(NewConflictError("User already exists"))
		require.True(t, ok)
		assert.Equal(t, ConflictError, appErr.Type)
	})

	t.Run("wrapped", func(t *testing.T) {
		wrapped := fmt.Errorf("register: %w", NewConflictError("User already exists"))
		appErr, ok := FromError(wrapped)
		require.True(t, ok)
		assert.Equal(t, "User already exists", appErr.Message)
	})

	t.Run("plain error", func(t *testing.T) {
		_, ok := FromError(errors.New("something else"))
		assert.False(t, ok)
	})
}

func TestClassifiers(t *testing.T) {
	notFound := fmt.Errorf("lookup: %w", NewNotFoundError("Post not found"))
	authErr := NewAuthError("Invalid credentials")
	conflict := NewConflictError("User already exists")
	validation := NewValidationError("Validation failed", []FieldError{{Field: "body.email", Message: "Invalid email format"}})

	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsNotFound(authErr))

	assert.True(t, IsAuthError(authErr))
	assert.False(t, IsAuthError(conflict))

	assert.True(t, IsConflict(conflict))
	assert.False(t, IsConflict(validation))

	assert.True(t, IsValidation(validation))
	assert.False(t, IsValidation(notFound))

	plain := errors.New("not an app error")
	assert.False(t, IsNotFound(plain))
	assert.False(t, IsAuthError(plain))
}

func TestValidationError_CarriesDetails(t *testing.T) {
	details := []FieldError{
		{Field: "body.name", Message: "Name is required"},
		{Field: "body.email", Message: "Invalid email format"},
	}
	err := NewValidationError("Validation failed", details)

	assert.Equal(t, details, err.Details)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode())
}
