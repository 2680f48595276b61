// Package posts implements CRUD on posts. Reads are public; mutations are
// scoped to the authenticated owner, so a foreign post is indistinguishable
// from a missing one.
package posts

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/postboard-go/apperror"
)

// Service holds the posts business logic.
type Service struct {
	pool *pgxpool.Pool
}

// NewService constructs the posts service.
func NewService(pool *pgxpool.Pool) *Service {
	return &Service{pool: pool}
}

// ListPosts returns all posts, newest first, with author usernames resolved.
func (s *Service) ListPosts(ctx context.Context) ([]PostView, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT p.id, p.title, p.content, p.created_at, p.updated_at, u.username
		 FROM posts p
		 JOIN users u ON u.id = p.user_id
		 ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list posts", err)
	}
	defer rows.Close()

	views := []PostView{}
	for rows.Next() {
		var v PostView
		if err := rows.Scan(&v.ID, &v.Title, &v.Content, &v.CreatedAt, &v.UpdatedAt, &v.AuthorUsername); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan post", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read posts", err)
	}

	return views, nil
}

// GetPost returns a single post by id.
func (s *Service) GetPost(ctx context.Context, id int) (*PostView, error) {
	var v PostView
	err := s.pool.QueryRow(ctx,
		`SELECT p.id, p.title, p.content, p.created_at, p.updated_at, u.username
		 FROM posts p
		 JOIN users u ON u.id = p.user_id
		 WHERE p.id = $1`,
		id,
	).Scan(&v.ID, &v.Title, &v.Content, &v.CreatedAt, &v.UpdatedAt, &v.AuthorUsername)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("Post not found")
		}
		return nil, apperror.NewDatabaseError("failed to get post", err)
	}
	return &v, nil
}

// CreatePost inserts a post owned by userID.
func (s *Service) CreatePost(ctx context.Context, userID int, req CreatePostRequest) (*CreatedPost, error) {
	post := &CreatedPost{Title: req.Title, Content: req.Content}
	err := s.pool.QueryRow(ctx,
		`INSERT INTO posts (user_id, title, content)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		userID, req.Title, req.Content,
	).Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to create post", err)
	}
	return post, nil
}

// UpdatePost replaces the title and content of a post owned by userID. The
// ownership predicate is part of the UPDATE itself, so missing and
// not-owned posts both surface as not found.
func (s *Service) UpdatePost(ctx context.Context, id, userID int, req UpdatePostRequest) (*UpdatedPost, error) {
	post := &UpdatedPost{ID: id}
	err := s.pool.QueryRow(ctx,
		`UPDATE posts
		 SET title = $1, content = $2, updated_at = now()
		 WHERE id = $3 AND user_id = $4
		 RETURNING id, title, content, updated_at`,
		req.Title, req.Content, id, userID,
	).Scan(&post.ID, &post.Title, &post.Content, &post.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("Post not found or unauthorized")
		}
		return nil, apperror.NewDatabaseError("failed to update post", err)
	}
	return post, nil
}

// DeletePost removes a post owned by userID. Deleting an already-deleted or
// foreign post reports not found.
func (s *Service) DeletePost(ctx context.Context, id, userID int) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM posts WHERE id = $1 AND user_id = $2`,
		id, userID)
	if err != nil {
		return apperror.NewDatabaseError("failed to delete post", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError("Post not found or unauthorized")
	}
	return nil
}
