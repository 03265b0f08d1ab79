package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/takashi605/blog-backend/internal/http/response"
	pkgerrors "github.com/takashi605/blog-backend/internal/pkg/errors"
)

// respondServiceError maps a service-layer error onto an HTTP status.
// Missing or unpublished resources come back as 404, rejected input as
// 400, state conflicts as 409; anything unrecognised is a 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pkgerrors.ErrNotFound):
		response.RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, pkgerrors.ErrInvalidArgument):
		response.RespondError(c, http.StatusBadRequest, "invalid_argument", err)
	case errors.Is(err, pkgerrors.ErrConflict):
		response.RespondError(c, http.StatusConflict, "conflict", err)
	default:
		response.RespondError(c, http.StatusInternalServerError, "internal", err)
	}
}
