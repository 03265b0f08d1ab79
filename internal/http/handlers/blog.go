package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/takashi605/blog-backend/internal/http/response"
	"github.com/takashi605/blog-backend/internal/services"
)

var errNegativeQuantity = errors.New("quantity must be non-negative")

// BlogHandler serves the reader-facing surface. Every route filters or
// gates by the publication predicate.
type BlogHandler struct {
	postService    services.BlogPostService
	curatedService services.CuratedPostService
}

func NewBlogHandler(postService services.BlogPostService, curatedService services.CuratedPostService) *BlogHandler {
	return &BlogHandler{postService: postService, curatedService: curatedService}
}

// GET /blog/posts/:id
func (h *BlogHandler) GetPost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	post, err := h.postService.ViewPost(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, newBlogPostResponse(post))
}

// GET /blog/posts/latest?quantity=n
func (h *BlogHandler) GetLatestPosts(c *gin.Context) {
	var quantity *int
	if q := c.Query("quantity"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_argument", err)
			return
		}
		if n < 0 {
			response.RespondError(c, http.StatusBadRequest, "invalid_argument", errNegativeQuantity)
			return
		}
		quantity = &n
	}
	posts, err := h.postService.ViewLatestPosts(c.Request.Context(), quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, newBlogPostResponses(posts))
}

// GET /blog/posts/top-tech-pick
func (h *BlogHandler) GetTopTechPick(c *gin.Context) {
	post, err := h.curatedService.ViewTopTechPick(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, newBlogPostResponse(post))
}

// GET /blog/posts/pickup
func (h *BlogHandler) GetPickUpPosts(c *gin.Context) {
	posts, err := h.curatedService.ViewPickUpPosts(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, newBlogPostResponses(posts))
}

// GET /blog/posts/popular
func (h *BlogHandler) GetPopularPosts(c *gin.Context) {
	posts, err := h.curatedService.ViewPopularPosts(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, newBlogPostResponses(posts))
}
