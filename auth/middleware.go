package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/user/postboard-go/apperror"
	"github.com/user/postboard-go/web"
)

// UserFinder resolves a token's user id to a live account. Implemented by
// *Service; middleware depends on the interface so tests can substitute it.
type UserFinder interface {
	FindUserByID(ctx context.Context, id int) (*User, error)
}

// Require returns middleware enforcing authentication. The chain is:
// extract bearer token, verify signature, confirm the user still exists,
// attach the Principal. Each step has its own fixed rejection.
func Require(tokens *TokenService, users UserFinder) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r)
			if !ok {
				web.Error(w, r, apperror.NewAuthError("Access token required"))
				return
			}

			claims, err := tokens.Verify(tokenString)
			if err != nil {
				web.Error(w, r, apperror.NewForbiddenError("Invalid or expired token"))
				return
			}

			user, err := users.FindUserByID(r.Context(), claims.UserID)
			if err != nil {
				if apperror.IsNotFound(err) {
					web.Error(w, r, apperror.NewAuthError("User not found"))
					return
				}
				web.Error(w, r, err)
				return
			}

			ctx := NewContextWithPrincipal(r.Context(), &Principal{ID: user.ID, Email: user.Email})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Optional returns middleware that attaches a Principal when a valid token
// for an existing user is presented and otherwise continues anonymously.
// Token problems never produce an error response here; absence of valid
// auth degrades to an anonymous request.
func Optional(tokens *TokenService, users UserFinder) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := tokens.Verify(tokenString)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.FindUserByID(r.Context(), claims.UserID)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := NewContextWithPrincipal(r.Context(), &Principal{ID: user.ID, Email: user.Email})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from an Authorization header of the exact
// form "Bearer <token>".
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
