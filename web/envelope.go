// Package web holds the HTTP transport plumbing shared by every route:
// the uniform response envelope, success/error writers, and the router-level
// middleware (request logging, panic recovery, route fallbacks).
package web

import "github.com/user/postboard-go/apperror"

// Envelope is the uniform response shape. Every endpoint answers with it:
// success is always present; message/data appear on success, error on failure.
type Envelope struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrorBody is the error half of the envelope. Details is present only for
// validation failures; Stack only outside production.
type ErrorBody struct {
	Message string                `json:"message"`
	Details []apperror.FieldError `json:"details,omitempty"`
	Stack   string                `json:"stack,omitempty"`
}
