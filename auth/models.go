package auth

import "time"

// User represents a user account as stored in the users table. PasswordHash
// is never serialized to clients.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
