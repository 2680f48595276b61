package posts

import (
	"strings"
	"time"

	"github.com/user/postboard-go/validate"
)

// IDParam is the route parameter rule shared by every /api/posts/{id} route.
var IDParam = validate.ParamRule{
	Name:    "id",
	Pattern: validate.IntID,
	Message: "Post ID must be a number",
}

// CreatePostRequest is the payload for POST /api/posts.
type CreatePostRequest struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
}

// Normalize trims both fields; a whitespace-only title or content then fails
// the required constraint.
func (r *CreatePostRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Content = strings.TrimSpace(r.Content)
}

// UpdatePostRequest is the payload for PUT /api/posts/{id}. Updates are full
// replacements, so the constraints match creation.
type UpdatePostRequest struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
}

// Normalize trims both fields.
func (r *UpdatePostRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Content = strings.TrimSpace(r.Content)
}

// PostView is the read-side representation returned by list and get,
// including the author's username resolved from the users table.
type PostView struct {
	ID             int       `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	AuthorUsername string    `json:"author_username"`
}

// CreatedPost is the creation response body.
type CreatedPost struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdatedPost is the update response body.
type UpdatedPost struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}
