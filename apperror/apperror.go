// Package apperror defines the application's error taxonomy and the mapping
// from error categories to HTTP status codes. Handlers and services return
// *AppError values (or wrap collaborator errors into them) so that the
// transport layer can render every failure with the same response envelope.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType classifies an application error.
type ErrorType int

const (
	// InternalError represents a generic internal server error.
	InternalError ErrorType = iota
	// DatabaseError represents an error originating from the database.
	DatabaseError
	// ConfigError represents an error in application configuration.
	ConfigError
	// AuthError represents an authentication failure (no/invalid identity).
	AuthError
	// ForbiddenError represents a rejected token on a protected route.
	ForbiddenError
	// NotFoundError represents a missing resource.
	NotFoundError
	// ValidationError represents rejected request input, with field details.
	ValidationError
	// BadRequestError represents a malformed request outside schema validation.
	BadRequestError
	// ConflictError represents a uniqueness conflict (resource already exists).
	ConflictError
)

// FieldError describes a single validation violation. Field uses the
// "<section>.<name>" convention, e.g. "body.email" or "params.id".
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is the application's error type. Message is user-facing; Err holds
// the wrapped underlying error and is never serialized to clients. Details is
// populated only for validation errors.
type AppError struct {
	Type    ErrorType
	Message string
	Details []FieldError
	Err     error
}

// Error satisfies the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying error to errors.Is / errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps the error type to an HTTP status code.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case AuthError:
		return http.StatusUnauthorized
	case ForbiddenError:
		return http.StatusForbidden
	case NotFoundError:
		return http.StatusNotFound
	case ValidationError, BadRequestError:
		return http.StatusBadRequest
	case ConflictError:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// New creates an AppError of an arbitrary type.
func New(errType ErrorType, message string, underlying error) *AppError {
	return &AppError{Type: errType, Message: message, Err: underlying}
}

// NewInternalError creates an InternalError.
func NewInternalError(message string, underlying error) *AppError {
	return New(InternalError, message, underlying)
}

// NewDatabaseError creates a DatabaseError.
func NewDatabaseError(message string, underlying error) *AppError {
	return New(DatabaseError, message, underlying)
}

// NewConfigError creates a ConfigError.
func NewConfigError(message string, underlying error) *AppError {
	return New(ConfigError, message, underlying)
}

// NewAuthError creates an AuthError (401).
func NewAuthError(message string) *AppError {
	return New(AuthError, message, nil)
}

// NewForbiddenError creates a ForbiddenError (403).
func NewForbiddenError(message string) *AppError {
	return New(ForbiddenError, message, nil)
}

// NewNotFoundError creates a NotFoundError (404).
func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message, nil)
}

// NewBadRequestError creates a BadRequestError (400).
func NewBadRequestError(message string, underlying error) *AppError {
	return New(BadRequestError, message, underlying)
}

// NewConflictError creates a ConflictError (409).
func NewConflictError(message string) *AppError {
	return New(ConflictError, message, nil)
}

// NewValidationError creates a ValidationError (400) carrying the full list of
// violations collected by the validation gate.
func NewValidationError(message string, details []FieldError) *AppError {
	return &AppError{Type: ValidationError, Message: message, Details: details}
}

// FromError converts err to an *AppError if it is (or wraps) one.
func FromError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == NotFoundError
}

// IsAuthError reports whether err is an AuthError.
func IsAuthError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == AuthError
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ConflictError
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ValidationError
}
