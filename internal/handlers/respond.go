package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/averyld/teamtalk/pkg/apperrors"
)

// respondError translates application errors to status codes: InvalidInput
// becomes 400, AccessDenied becomes 403, anything else is a 500.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsInvalidInput(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAccessDenied(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
