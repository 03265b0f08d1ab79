package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is the body of every non-2xx response.
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, APIError{
		Message: msg,
		Code:    code,
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
