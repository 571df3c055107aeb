package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic-server/internal/logger"
)

// Error sends an error response with the given status.
func Error(c *gin.Context, statusCode int, errorMessage string) {
	c.JSON(statusCode, gin.H{"error": errorMessage})
}

// BadRequest sends a 400 Bad Request error response.
func BadRequest(c *gin.Context, errorMessage string) {
	Error(c, http.StatusBadRequest, errorMessage)
}

// ValidationFailed sends a 400 with per-field error details.
func ValidationFailed(c *gin.Context, errorMessage string, details map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": errorMessage, "details": details})
}

// Unauthorized sends a 401 Unauthorized error response.
func Unauthorized(c *gin.Context, errorMessage string) {
	Error(c, http.StatusUnauthorized, errorMessage)
}

// NotFound sends a 404 Not Found error response.
func NotFound(c *gin.Context, errorMessage string) {
	Error(c, http.StatusNotFound, errorMessage)
}

// Conflict sends a 409 Conflict error response.
func Conflict(c *gin.Context, errorMessage string) {
	Error(c, http.StatusConflict, errorMessage)
}

// InternalServerError logs the underlying error and sends a generic
// 500 response. The cause never reaches the client.
func InternalServerError(c *gin.Context, err error) {
	logger.WithField("path", c.FullPath()).WithError(err).Error("internal server error")
	Error(c, http.StatusInternalServerError, "Internal server error")
}
