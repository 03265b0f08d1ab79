package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/takashi605/blog-backend/internal/http/response"
	"github.com/takashi605/blog-backend/internal/services"
)

var errMissingPath = errors.New("path is required")

type ImageHandler struct {
	imageService services.ImageService
}

func NewImageHandler(imageService services.ImageService) *ImageHandler {
	return &ImageHandler{imageService: imageService}
}

// GET /blog/images
func (h *ImageHandler) ListImages(c *gin.Context) {
	images, err := h.imageService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, newImageResponses(images))
}

// POST /admin/blog/images
// body: { "path": "..." }
func (h *ImageHandler) RegisterImage(c *gin.Context) {
	var req struct {
		Path string `json:"path"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	if req.Path == "" {
		response.RespondError(c, http.StatusBadRequest, "invalid_argument", errMissingPath)
		return
	}
	img, err := h.imageService.Register(c.Request.Context(), req.Path)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, imageResponse{ID: img.ID(), Path: img.Path()})
}
