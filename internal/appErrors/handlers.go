package appErrors

import (
	"net/http"

	"barberia_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON envelope for every API failure.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   *AppError `json:"error"`
}

// HandleError maps err to the taxonomy and writes the response.
// Unknown errors become a generic 500 with the cause logged, never leaked.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError

	if !As(err, &appErr) {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= http.StatusInternalServerError {
		logger.CtxWithError(c.Request.Context(), "unhandled server error", err,
			"path", c.Request.URL.Path, "method", c.Request.Method)
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{Success: false, Error: appErr})
}
