// Package auth implements user registration, login, token issuance and the
// authentication middleware for protected routes.
package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/postboard-go/apperror"
)

// Service holds the auth business logic. The pool is injected at bootstrap;
// there is no ambient database state.
type Service struct {
	pool   *pgxpool.Pool
	tokens *TokenService
}

// NewService constructs the auth service.
func NewService(pool *pgxpool.Pool, tokens *TokenService) *Service {
	return &Service{pool: pool, tokens: tokens}
}

// Register creates a new user account. Uniqueness of username and email is
// ultimately enforced by the database constraints; the pre-insert existence
// check only provides the friendly conflict response for the common case,
// and a constraint violation slipping past it maps to the same 409.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*RegisteredUser, error) {
	var existingID int
	err := s.pool.QueryRow(ctx,
		`SELECT id FROM users WHERE email = $1 OR username = $2`,
		req.Email, req.Username,
	).Scan(&existingID)
	if err == nil {
		return nil, apperror.NewConflictError("User already exists")
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.NewDatabaseError("failed to check existing user", err)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, apperror.NewInternalError("failed to hash password", err)
	}

	user := &RegisteredUser{Username: req.Username, Email: req.Email}
	err = s.pool.QueryRow(ctx,
		`INSERT INTO users (username, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		req.Username, req.Email, hash,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, apperror.NewConflictError("User already exists")
		}
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}

	return user, nil
}

// Login verifies the credentials and returns a signed token together with
// the user summary. Unknown email and wrong password are indistinguishable
// to the caller.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginData, error) {
	var user User
	err := s.pool.QueryRow(ctx,
		`SELECT id, username, email, password_hash FROM users WHERE email = $1`,
		req.Email,
	).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewAuthError("Invalid credentials")
		}
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}

	if !VerifyPassword(req.Password, user.PasswordHash) {
		return nil, apperror.NewAuthError("Invalid credentials")
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, apperror.NewInternalError("failed to issue token", err)
	}

	return &LoginData{
		Token: token,
		User:  UserInfo{ID: user.ID, Username: user.Username, Email: user.Email},
	}, nil
}

// FindUserByID looks up a user by primary key. Used by the auth middleware
// to confirm that a token still refers to a live account.
func (s *Service) FindUserByID(ctx context.Context, id int) (*User, error) {
	var user User
	err := s.pool.QueryRow(ctx,
		`SELECT id, username, email, created_at FROM users WHERE id = $1`,
		id,
	).Scan(&user.ID, &user.Username, &user.Email, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("user not found")
		}
		return nil, apperror.NewDatabaseError("failed to get user by id", err)
	}
	return &user, nil
}
