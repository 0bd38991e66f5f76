package api

import (
	"errors"
	"net/http"

	errorspkg "flosscast.app/pkg/errors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
	// Field names the offending key of a parse error
	Field string `json:"field,omitempty"`
}

// handleError handles different types of application errors
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	var appErr *errorspkg.AppError
	var statusCode int
	var message string

	if !errors.As(err, &appErr) {
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
		c.JSON(statusCode, ErrorResponse{Error: message})
		return
	}

	response := ErrorResponse{}
	switch appErr.Type {
	case errorspkg.ValidationError:
		statusCode = http.StatusBadRequest
		message = appErr.Message
	case errorspkg.NotFoundError:
		statusCode = http.StatusNotFound
		message = appErr.Message
	case errorspkg.NetworkError:
		statusCode = http.StatusServiceUnavailable
		message = "Forecast service unavailable"
	case errorspkg.ParseError:
		statusCode = http.StatusBadGateway
		message = "Malformed forecast data"
		response.Field = appErr.Field
	case errorspkg.CacheCorruptError, errorspkg.ConsistencyError:
		statusCode = http.StatusInternalServerError
		message = "Forecast cache is unusable, reset it with DELETE /api/cache"
	case errorspkg.StorageError:
		statusCode = http.StatusInternalServerError
		message = "Forecast cache unavailable"
	default:
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	response.Error = message
	c.JSON(statusCode, response)
}
