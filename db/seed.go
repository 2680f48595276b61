package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/postboard-go/apperror"
	"github.com/user/postboard-go/auth"
)

type seedUser struct {
	username string
	email    string
}

type seedPost struct {
	authorEmail string
	title       string
	content     string
}

var seedUsers = []seedUser{
	{username: "john_doe", email: "john@example.com"},
	{username: "jane_smith", email: "jane@example.com"},
}

var seedPosts = []seedPost{
	{authorEmail: "john@example.com", title: "First Post", content: "This is my first post!"},
	{authorEmail: "john@example.com", title: "Second Post", content: "Another post from John."},
	{authorEmail: "jane@example.com", title: "Hello World", content: "Jane's introduction post."},
}

// seedPassword is the shared demo credential; it is hashed with the standard
// cost at seed time.
const seedPassword = "password123"

// Seed inserts the demo users and posts. It is idempotent: existing users are
// left untouched and posts are only created when the table is empty.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	hash, err := auth.HashPassword(seedPassword)
	if err != nil {
		return apperror.NewInternalError("failed to hash seed password", err)
	}

	userIDs := make(map[string]int, len(seedUsers))
	for _, u := range seedUsers {
		if _, err := pool.Exec(ctx,
			`INSERT INTO users (username, email, password_hash)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (email) DO NOTHING`,
			u.username, u.email, hash); err != nil {
			return apperror.NewDatabaseError("failed to seed user "+u.username, err)
		}

		var id int
		if err := pool.QueryRow(ctx,
			`SELECT id FROM users WHERE email = $1`, u.email).Scan(&id); err != nil {
			return apperror.NewDatabaseError("failed to look up seeded user "+u.username, err)
		}
		userIDs[u.email] = id
	}

	var postCount int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM posts`).Scan(&postCount); err != nil {
		return apperror.NewDatabaseError("failed to count posts", err)
	}
	if postCount > 0 {
		return nil
	}

	for _, p := range seedPosts {
		if _, err := pool.Exec(ctx,
			`INSERT INTO posts (user_id, title, content) VALUES ($1, $2, $3)`,
			userIDs[p.authorEmail], p.title, p.content); err != nil {
			return apperror.NewDatabaseError("failed to seed post "+p.title, err)
		}
	}

	return nil
}
