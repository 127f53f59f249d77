package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/respicy/backend/internal/logger"
	"github.com/respicy/backend/internal/service"
)

// respondError maps a service error to an HTTP status and a {message} body.
// Unrecognized errors are logged and reported as a generic 500 so no store
// internals leak to clients.
func respondError(c *gin.Context, err error) {
	switch {
	case service.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, service.ErrEmailTaken), errors.Is(err, service.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		logger.Log.Errorw("unexpected error", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
	}
}

// forbidden writes a 403 with the given message.
func forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, gin.H{"message": message})
}
