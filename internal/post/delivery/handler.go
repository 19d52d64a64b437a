package delivery

import (
	"net/http"

	authdelivery "devconnector-backend/internal/auth/delivery"
	"devconnector-backend/internal/post/dto"
	"devconnector-backend/internal/post/usecase"
	"devconnector-backend/pkg/apperror"
	"devconnector-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// PostHandler handles post-related HTTP requests
type PostHandler struct {
	postUsecase usecase.PostUsecase
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postUsecase usecase.PostUsecase) *PostHandler {
	return &PostHandler{postUsecase: postUsecase}
}

// Create publishes a post
// POST /api/posts
func (h *PostHandler) Create(c *gin.Context) {
	var req dto.TextRequest
	if err := validation.Bind(c, &req, dto.TextMessages); err != nil {
		apperror.Respond(c, err)
		return
	}

	post, err := h.postUsecase.Create(c.Request.Context(), authdelivery.UserID(c), req.Text)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// List returns all posts, newest first
// GET /api/posts
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.postUsecase.List(c.Request.Context())
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Get returns a single post
// GET /api/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.postUsecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Delete removes a post written by the caller
// DELETE /api/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.postUsecase.Delete(c.Request.Context(), authdelivery.UserID(c), c.Param("id")); err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Post is removed"})
}

// Like adds the caller to the post's likes
// PUT /api/posts/like/:id
func (h *PostHandler) Like(c *gin.Context) {
	likes, err := h.postUsecase.Like(c.Request.Context(), authdelivery.UserID(c), c.Param("id"))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, likes)
}

// Unlike removes the caller's like
// PUT /api/posts/unlike/:id
func (h *PostHandler) Unlike(c *gin.Context) {
	likes, err := h.postUsecase.Unlike(c.Request.Context(), authdelivery.UserID(c), c.Param("id"))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, likes)
}

// AddComment comments on a post
// POST /api/posts/comment/:id
func (h *PostHandler) AddComment(c *gin.Context) {
	var req dto.TextRequest
	if err := validation.Bind(c, &req, dto.TextMessages); err != nil {
		apperror.Respond(c, err)
		return
	}

	comments, err := h.postUsecase.AddComment(c.Request.Context(), authdelivery.UserID(c), c.Param("id"), req.Text)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// RemoveComment deletes one of the caller's comments
// DELETE /api/posts/comment/:id/:comment_id
func (h *PostHandler) RemoveComment(c *gin.Context) {
	comments, err := h.postUsecase.RemoveComment(c.Request.Context(), authdelivery.UserID(c), c.Param("id"), c.Param("comment_id"))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}
