package auth

import (
	"context"
	"net/http"

	"github.com/user/postboard-go/apperror"
	"github.com/user/postboard-go/validate"
	"github.com/user/postboard-go/web"
)

// AuthService is the slice of *Service the HTTP handlers depend on.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisteredUser, error)
	Login(ctx context.Context, req LoginRequest) (*LoginData, error)
}

// Handlers exposes the auth endpoints.
type Handlers struct {
	service AuthService
}

// NewHandlers constructs the auth handlers.
func NewHandlers(service AuthService) *Handlers {
	return &Handlers{service: service}
}

// HandleRegister handles POST /api/auth/register. The body has already been
// validated and normalized by the validation gate.
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := validate.FromContext[RegisterRequest](r.Context())
		if !ok {
			web.Error(w, r, apperror.NewInternalError("validated request body missing from context", nil))
			return
		}

		user, err := h.service.Register(r.Context(), *req)
		if err != nil {
			web.Error(w, r, err)
			return
		}

		web.Success(w, http.StatusCreated, "User created successfully", user)
	}
}

// HandleLogin handles POST /api/auth/login.
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := validate.FromContext[LoginRequest](r.Context())
		if !ok {
			web.Error(w, r, apperror.NewInternalError("validated request body missing from context", nil))
			return
		}

		data, err := h.service.Login(r.Context(), *req)
		if err != nil {
			web.Error(w, r, err)
			return
		}

		web.Success(w, http.StatusOK, "Login successful", data)
	}
}
