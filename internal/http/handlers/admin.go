package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	types "github.com/takashi605/blog-backend/internal/domain"
	"github.com/takashi605/blog-backend/internal/http/response"
	"github.com/takashi605/blog-backend/internal/services"
)

// AdminBlogHandler serves the administration surface: post authoring and
// curated-set management, with no publication gate on reads.
type AdminBlogHandler struct {
	postService    services.BlogPostService
	curatedService services.CuratedPostService
}

func NewAdminBlogHandler(postService services.BlogPostService, curatedService services.CuratedPostService) *AdminBlogHandler {
	return &AdminBlogHandler{postService: postService, curatedService: curatedService}
}

// GET /admin/blog/posts?include_unpublished=bool
func (h *AdminBlogHandler) ListPosts(c *gin.Context) {
	includeUnpublished := false
	if q := c.Query("include_unpublished"); q != "" {
		v, err := strconv.ParseBool(q)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_argument", err)
			return
		}
		includeUnpublished = v
	}
	posts, err := h.postService.ViewAllPosts(c.Request.Context(), includeUnpublished)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, newBlogPostResponses(posts))
}

// GET /admin/blog/posts/:id
func (h *AdminBlogHandler) GetPost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	post, err := h.postService.ViewAdminPost(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, newBlogPostResponse(post))
}

// POST /admin/blog/posts
func (h *AdminBlogHandler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	post, err := h.postService.CreatePost(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, newBlogPostResponse(post))
}

// PUT /admin/blog/posts/:id
func (h *AdminBlogHandler) UpdatePost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	publishedDate, err := types.ParseJstDate(req.PublishedDate)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	input := services.UpdateBlogPostInput{
		Title:         req.Title,
		PublishedDate: publishedDate,
		Contents:      contentInputs(req.Contents),
	}
	if req.Thumbnail != nil {
		input.Thumbnail = &types.ThumbnailInput{ID: req.Thumbnail.ID, Path: req.Thumbnail.Path}
	}
	post, err := h.postService.UpdatePost(c.Request.Context(), id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, newBlogPostResponse(post))
}

// PUT /admin/blog/posts/top-tech-pick
func (h *AdminBlogHandler) PutTopTechPick(c *gin.Context) {
	var ref postRef
	if err := c.ShouldBindJSON(&ref); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	post, err := h.curatedService.SelectTopTechPick(c.Request.Context(), ref.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, newBlogPostResponse(post))
}

// PUT /admin/blog/posts/pickup
func (h *AdminBlogHandler) PutPickUpPosts(c *gin.Context) {
	var refs []postRef
	if err := c.ShouldBindJSON(&refs); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	posts, err := h.curatedService.SelectPickUpPosts(c.Request.Context(), postRefIDs(refs))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, newBlogPostResponses(posts))
}

// PUT /admin/blog/posts/popular
func (h *AdminBlogHandler) PutPopularPosts(c *gin.Context) {
	var refs []postRef
	if err := c.ShouldBindJSON(&refs); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	posts, err := h.curatedService.SelectPopularPosts(c.Request.Context(), postRefIDs(refs))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, newBlogPostResponses(posts))
}
