// Package handlers provides HTTP request handlers for the presentation layer.
package handlers

import (
	"net/http"

	"github.com/AtRiskMedia/sitepanel-go/internal/domain/apperrors"
	"github.com/AtRiskMedia/sitepanel-go/internal/infrastructure/observability/logging"
	"github.com/gin-gonic/gin"
)

// respondData writes the standard success envelope around a payload.
func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondMessage writes the standard success envelope with no payload.
func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
	})
}

// respondError maps the shared error taxonomy to HTTP statuses.
// Store failures are logged with their cause but reported opaquely.
func respondError(c *gin.Context, logger *logging.ChanneledLogger, tenantID string, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"message": "validation failed",
			"fields":  apperrors.FieldsOf(err),
		})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": err.Error(),
		})
	case apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"message": err.Error(),
		})
	default:
		logger.Content().Error("Request failed with store error", "error", err.Error(), "tenantId", tenantID, "path", c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "internal server error",
		})
	}
}

// respondNoTenant is the shared guard for a missing tenant context.
func respondNoTenant(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "tenant context not found",
	})
}
