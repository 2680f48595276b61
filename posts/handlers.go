package posts

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/user/postboard-go/apperror"
	"github.com/user/postboard-go/auth"
	"github.com/user/postboard-go/validate"
	"github.com/user/postboard-go/web"
)

// PostService is the slice of *Service the HTTP handlers depend on.
type PostService interface {
	ListPosts(ctx context.Context) ([]PostView, error)
	GetPost(ctx context.Context, id int) (*PostView, error)
	CreatePost(ctx context.Context, userID int, req CreatePostRequest) (*CreatedPost, error)
	UpdatePost(ctx context.Context, id, userID int, req UpdatePostRequest) (*UpdatedPost, error)
	DeletePost(ctx context.Context, id, userID int) error
}

// Handlers exposes the posts endpoints.
type Handlers struct {
	service PostService
}

// NewHandlers constructs the posts handlers.
func NewHandlers(service PostService) *Handlers {
	return &Handlers{service: service}
}

// HandleList handles GET /api/posts.
func (h *Handlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views, err := h.service.ListPosts(r.Context())
		if err != nil {
			web.Error(w, r, err)
			return
		}
		web.Success(w, http.StatusOK, "", views)
	}
}

// HandleGet handles GET /api/posts/{id}.
func (h *Handlers) HandleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r)
		view, err := h.service.GetPost(r.Context(), id)
		if err != nil {
			web.Error(w, r, err)
			return
		}
		web.Success(w, http.StatusOK, "", view)
	}
}

// HandleCreate handles POST /api/posts. Ownership is assigned from the
// authenticated Principal.
func (h *Handlers) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := auth.PrincipalFromContext(r.Context())
		if !ok {
			web.Error(w, r, apperror.NewAuthError("Access token required"))
			return
		}
		req, ok := validate.FromContext[CreatePostRequest](r.Context())
		if !ok {
			web.Error(w, r, apperror.NewInternalError("validated request body missing from context", nil))
			return
		}

		post, err := h.service.CreatePost(r.Context(), principal.ID, *req)
		if err != nil {
			web.Error(w, r, err)
			return
		}
		web.Success(w, http.StatusCreated, "Post created successfully", post)
	}
}

// HandleUpdate handles PUT /api/posts/{id}.
func (h *Handlers) HandleUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := auth.PrincipalFromContext(r.Context())
		if !ok {
			web.Error(w, r, apperror.NewAuthError("Access token required"))
			return
		}
		req, ok := validate.FromContext[UpdatePostRequest](r.Context())
		if !ok {
			web.Error(w, r, apperror.NewInternalError("validated request body missing from context", nil))
			return
		}

		post, err := h.service.UpdatePost(r.Context(), pathID(r), principal.ID, *req)
		if err != nil {
			web.Error(w, r, err)
			return
		}
		web.Success(w, http.StatusOK, "Post updated successfully", post)
	}
}

// HandleDelete handles DELETE /api/posts/{id}.
func (h *Handlers) HandleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := auth.PrincipalFromContext(r.Context())
		if !ok {
			web.Error(w, r, apperror.NewAuthError("Access token required"))
			return
		}

		if err := h.service.DeletePost(r.Context(), pathID(r), principal.ID); err != nil {
			web.Error(w, r, err)
			return
		}
		web.Success(w, http.StatusOK, "Post deleted successfully", nil)
	}
}

// pathID reads the {id} route parameter. The validation gate has already
// guaranteed it is numeric.
func pathID(r *http.Request) int {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	return id
}
